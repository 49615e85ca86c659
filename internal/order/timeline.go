package order

import "time"

const dateLayout = "2 Jan"

// Step is one row of the order timeline.
type Step struct {
	Status    Status
	Label     string
	Date      time.Time
	DateLabel string
	Active    bool
	Completed bool
}

// Timeline lays out the four lifecycle steps of o. Pooled is dated at
// creation, confirmed and dispatched at the dispatch date, delivered at the
// delivery date. Steps up to the current status are completed and the
// current one is active.
func Timeline(o Order, now time.Time) []Step {
	dates := map[Status]time.Time{
		StatusPooled:     o.CreatedAt,
		StatusConfirmed:  o.DispatchDate,
		StatusDispatched: o.DispatchDate,
		StatusDelivered:  o.DeliveryDate,
	}

	rank := o.Status.Rank()
	steps := make([]Step, 0, len(Statuses))
	for _, st := range Statuses {
		d := dates[st]
		steps = append(steps, Step{
			Status:    st,
			Label:     st.Label(),
			Date:      d,
			DateLabel: FormatDate(d, now),
			Active:    st == o.Status,
			Completed: st.Rank() <= rank,
		})
	}
	return steps
}

// FormatDate renders d as "Today" when it falls on now's calendar day and
// as "13 Jun" otherwise.
func FormatDate(d, now time.Time) string {
	d = d.In(now.Location())
	y1, m1, d1 := d.Date()
	y2, m2, d2 := now.Date()
	if y1 == y2 && m1 == m2 && d1 == d2 {
		return "Today"
	}
	return d.Format(dateLayout)
}
