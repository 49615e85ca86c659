package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"

	"go.uber.org/zap"

	"reddy-infra/internal/apperr"
	"reddy-infra/internal/dispatch"
	"reddy-infra/internal/logger"
	"reddy-infra/internal/order"
	"reddy-infra/internal/user"
)

func requireArgs(args []string, n int, form string) error {
	if len(args) < n {
		return fmt.Errorf("%w: %s", errUsage, form)
	}
	return nil
}

func parseQuantity(s string) (int, error) {
	q, err := strconv.Atoi(s)
	if err != nil {
		return 0, apperr.InvalidArgument("quantity %q is not a whole number", s)
	}
	return q, nil
}

func (a *app) printDispatchBanner() {
	r := a.schedule.Read(a.now())
	fmt.Fprintf(a.out, "Next dispatch: %s (%s, %s left)\n\n",
		formatTime(r.Next), plural(r.Days, "day", "days"), plural(r.Hours, "hour", "hours"))
}

func (a *app) cmdCatalog(ctx context.Context) error {
	a.printDispatchBanner()

	fmt.Fprintln(a.out, "Categories")
	tw := newTable(a.out)
	fmt.Fprintln(tw, "ID\tNAME\tPRODUCTS\tAVG SAVINGS")
	for _, c := range a.catalog.ListCategories(ctx) {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d%%\n", c.ID, c.Name, c.LiveProductCount, c.AvgSavingsPercent)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "\nTrending pools")
	tw = newTable(a.out)
	fmt.Fprintln(tw, "ID\tPRODUCT\tPOOLED\tSAVE\tPOOL")
	for _, p := range a.catalog.TrendingProducts(ctx) {
		pct, _ := p.SavingsPercent()
		fmt.Fprintf(tw, "%s\t%s\t%s/%s\t%d%%\t%d%% pooled\n",
			p.ID, p.Name, inr(p.PooledPrice), p.Unit, pct, p.PoolFillPercent())
	}
	return tw.Flush()
}

func (a *app) cmdCategory(ctx context.Context, args []string) error {
	if err := requireArgs(args, 1, "category <id>"); err != nil {
		return err
	}
	summary, products, err := a.catalog.GetCategory(ctx, args[0])
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s: %s, average savings %d%%\n\n",
		summary.Name, plural(summary.LiveProductCount, "product", "products"), summary.AvgSavingsPercent)

	tw := newTable(a.out)
	fmt.Fprintln(tw, "ID\tPRODUCT\tBRAND\tPOOLED\tRETAIL\tSAVE\tMOQ\tPOOL")
	for _, p := range products {
		pct, _ := p.SavingsPercent()
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%d%%\t%d\t%s %d%%\n",
			p.ID, p.Name, p.Brand, inr(p.PooledPrice), inr(p.RetailPrice), pct, p.MOQ,
			bar(p.PoolBarPercent()), p.PoolFillPercent())
	}
	return tw.Flush()
}

func (a *app) cmdProduct(ctx context.Context, args []string) error {
	if err := requireArgs(args, 1, "product <id>"); err != nil {
		return err
	}
	p, err := a.catalog.GetProduct(ctx, args[0])
	if err != nil {
		return err
	}

	pct, _ := p.SavingsPercent()
	fmt.Fprintf(a.out, "%s (%s)\n", p.Name, p.Brand)
	fmt.Fprintf(a.out, "Pooled price: %s/%s  Retail: %s  Save %d%%\n", inr(p.PooledPrice), p.Unit, inr(p.RetailPrice), pct)
	fmt.Fprintf(a.out, "Pool: %s %d / %d (%d%%)\n", bar(p.PoolBarPercent()), p.CurrentPoolQty, p.TargetPoolQty, p.PoolFillPercent())
	fmt.Fprintf(a.out, "MOQ: %d  Delivery: %s after dispatch", p.MOQ, plural(p.DeliveryDays, "day", "days"))
	if p.EMIAvailable {
		fmt.Fprint(a.out, "  EMI available")
	}
	fmt.Fprintln(a.out)

	fmt.Fprintln(a.out, "\nSpecifications")
	tw := newTable(a.out)
	for _, s := range p.Specs {
		fmt.Fprintf(tw, "  %s\t%s\n", s.Name, s.Value)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	qty := p.MOQ
	if item, err := a.store.CartItem(p.ID); err == nil {
		qty = item.Quantity
		fmt.Fprintf(a.out, "\nIn cart: %d\n", qty)
	}
	q := p.Quote(qty)
	fmt.Fprintf(a.out, "\nFor %d: %s pooled vs %s retail, you save %s\n", q.Quantity, inr(q.Pooled), inr(q.Retail), inr(q.Savings))
	return nil
}

func (a *app) cmdCart(ctx context.Context, args []string) error {
	sub := "show"
	if len(args) > 0 {
		sub, args = args[0], args[1:]
	}

	switch sub {
	case "show":
		return a.printCart()

	case "add":
		if err := requireArgs(args, 1, "cart add <id> [qty]"); err != nil {
			return err
		}
		p, err := a.catalog.GetProduct(ctx, args[0])
		if err != nil {
			return err
		}
		qty := p.MOQ
		if len(args) > 1 {
			if qty, err = parseQuantity(args[1]); err != nil {
				return err
			}
		}
		if err := a.store.AddToCart(ctx, p, qty); err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Added %d %s of %s\n", qty, p.Unit, p.Name)

	case "remove":
		if err := requireArgs(args, 1, "cart remove <id>"); err != nil {
			return err
		}
		if err := a.store.RemoveFromCart(ctx, args[0]); err != nil {
			return err
		}

	case "set":
		if err := requireArgs(args, 2, "cart set <id> <qty>"); err != nil {
			return err
		}
		qty, err := parseQuantity(args[1])
		if err != nil {
			return err
		}
		if err := a.store.UpdateCartQuantity(ctx, args[0], qty); err != nil {
			return err
		}

	case "inc", "dec":
		if err := requireArgs(args, 1, "cart "+sub+" <id>"); err != nil {
			return err
		}
		item, err := a.store.CartItem(args[0])
		if err != nil {
			return err
		}
		next := item.Product.StepUp(item.Quantity)
		if sub == "dec" {
			if !item.Product.CanStepDown(item.Quantity) {
				fmt.Fprintf(a.out, "%s is already at the minimum order quantity (%d)\n", item.Product.Name, item.Product.MOQ)
				return nil
			}
			next = item.Product.StepDown(item.Quantity)
		}
		if err := a.store.UpdateCartQuantity(ctx, args[0], next); err != nil {
			return err
		}

	case "clear":
		if err := a.store.ClearCart(ctx); err != nil {
			return err
		}

	default:
		return fmt.Errorf("%w: unknown cart command %q", errUsage, sub)
	}
	return a.printCart()
}

func (a *app) printCart() error {
	items := a.store.Cart()
	if len(items) == 0 {
		fmt.Fprintln(a.out, "Your cart is empty. Add products to start saving with pooled pricing.")
		return nil
	}

	tw := newTable(a.out)
	fmt.Fprintln(tw, "ID\tPRODUCT\tQTY\tPRICE\tLINE TOTAL")
	for _, it := range items {
		fmt.Fprintf(tw, "%s\t%s\t%d %s\t%s\t%s\n",
			it.Product.ID, it.Product.Name, it.Quantity, it.Product.Unit, inr(it.Product.PooledPrice), inr(it.LineTotal()))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "\nItems: %d  Total: %s  Pool savings: %s\n", a.store.CartCount(), inr(a.store.CartTotal()), inr(a.store.CartSavings()))
	return nil
}

func (a *app) cmdOnboard(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("onboard", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	phone := fs.String("phone", "", "10 digit mobile number")
	userType := fs.String("type", "", "contractor, builder, retailer, architect or individual")
	city := fs.String("city", "", "delivery city")
	otp := fs.String("otp", "", "4 digit code sent to the phone")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	if err := user.AcceptOTP(*otp); err != nil {
		return err
	}
	patch, err := user.Onboard(*phone, *userType, *city)
	if err != nil {
		return err
	}
	if err := a.store.SetUser(ctx, patch); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Welcome to Reddy Infra!")
	return a.printProfile(ctx)
}

func (a *app) cmdProfile(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("profile", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	name := fs.String("name", "", "display name")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	if *name != "" {
		if err := a.store.SetUser(ctx, user.Patch{Name: name}); err != nil {
			return err
		}
	}
	return a.printProfile(ctx)
}

func (a *app) printProfile(ctx context.Context) error {
	p := a.store.User()
	if !p.IsOnboarded {
		fmt.Fprintln(a.out, "Not signed in. Run: storefront onboard -phone <10 digits> -otp <4 digits> -type <type> -city <city>")
		return nil
	}

	typeLabel := p.UserType
	if ut, ok := user.LookupUserType(p.UserType); ok {
		typeLabel = ut.Label
	}
	name := p.Name
	if name == "" {
		name = "Buyer"
	}

	orders, err := a.orders.List(ctx)
	if err != nil {
		return err
	}
	savings, err := a.orders.TotalPoolSavings(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s  +91 %s\n", name, p.Phone)
	fmt.Fprintf(a.out, "%s, %s\n", typeLabel, p.City)
	fmt.Fprintf(a.out, "Orders: %d  Total pool savings: %s\n", len(orders), inr(savings))
	return nil
}

func (a *app) cmdLogout(ctx context.Context) error {
	if err := a.store.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Signed out.")
	return nil
}

func (a *app) cmdCheckout(ctx context.Context) error {
	o, err := a.store.Checkout(ctx)
	if errors.Is(err, order.ErrEmptyCart) {
		fmt.Fprintln(a.out, "Your cart is empty.")
		return err
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Order Pooled! %s\n", o.ID)
	fmt.Fprintf(a.out, "Total: %s  Pool savings: %s\n\n", inr(o.Total), inr(o.PoolSavings))
	if err := a.printTimeline(o); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "\nOrder will be confirmed once the pool target is reached.")
	return nil
}

func (a *app) printTimeline(o order.Order) error {
	tw := newTable(a.out)
	for _, step := range order.Timeline(o, a.now().In(a.schedule.Location())) {
		mark := " "
		switch {
		case step.Active:
			mark = ">"
		case step.Completed:
			mark = "x"
		}
		fmt.Fprintf(tw, "  [%s] %s\t%s\n", mark, step.Label, step.DateLabel)
	}
	return tw.Flush()
}

func (a *app) cmdOrders(ctx context.Context, args []string) error {
	if len(args) > 0 {
		o, err := a.orders.Get(ctx, args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "%s  %s  %s\n\n", o.ID, o.Status.Label(), formatTime(o.CreatedAt.In(a.schedule.Location())))
		tw := newTable(a.out)
		for _, it := range o.Items {
			fmt.Fprintf(tw, "  %s\t%d %s\t%s\n", it.Product.Name, it.Quantity, it.Product.Unit, inr(it.LineTotal()))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		fmt.Fprintf(a.out, "\nTotal: %s  Pool savings: %s\n\n", inr(o.Total), inr(o.PoolSavings))
		return a.printTimeline(o)
	}

	orders, err := a.orders.List(ctx)
	if err != nil {
		return err
	}
	savings, err := a.orders.TotalPoolSavings(ctx)
	if err != nil {
		return err
	}

	now := a.now().In(a.schedule.Location())
	fmt.Fprintf(a.out, "%s, %s saved through pooling\n\n", plural(len(orders), "order", "orders"), inr(savings))
	tw := newTable(a.out)
	fmt.Fprintln(tw, "ID\tSTATUS\tITEMS\tTOTAL\tDISPATCH\tPROGRESS\tDELIVERY")
	for _, o := range orders {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\t%s\t%s\n",
			o.ID, o.Status.Label(), o.ItemCount(), inr(o.Total),
			order.FormatDate(o.DispatchDate, now), bar(o.Status.Progress()), order.FormatDate(o.DeliveryDate, now))
	}
	return tw.Flush()
}

func (a *app) cmdDispatch(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("dispatch", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	watch := fs.Bool("watch", false, "keep refreshing until interrupted")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	show := func(r dispatch.Reading) {
		fmt.Fprintf(a.out, "Next dispatch %s: %s, %s\n",
			formatTime(r.Next), plural(r.Days, "day", "days"), plural(r.Hours, "hour", "hours"))
	}
	if !*watch {
		show(a.schedule.Read(a.now()))
		return nil
	}

	countdown := dispatch.NewCountdown(dispatch.CountdownParams{
		Schedule: a.schedule,
		Interval: a.cfg.Dispatch.CountdownInterval,
		Now:      a.now,
		OnTick:   show,
	})
	err := countdown.Run(ctx)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		logger.FromCtx(ctx).Debug("countdown interrupted", zap.Error(err))
		return nil
	}
	return err
}

func (a *app) cmdLearn(ctx context.Context) error {
	for _, c := range a.catalog.EducationCards(ctx) {
		fmt.Fprintf(a.out, "%s\n  %s\n\n", c.Title, c.Description)
	}

	products := a.products.Products()
	if len(products) == 0 {
		return nil
	}
	p := products[0]
	q := p.Quote(p.MOQ)
	fmt.Fprintf(a.out, "Retail vs pooled: %d %s of %s\n", q.Quantity, p.Unit, p.Name)
	tw := newTable(a.out)
	fmt.Fprintf(tw, "  Retail\t%s\n", inr(q.Retail))
	fmt.Fprintf(tw, "  Pooled\t%s\n", inr(q.Pooled))
	fmt.Fprintf(tw, "  You save\t%s\n", inr(q.Savings))
	return tw.Flush()
}
