package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/manikandan032/plant-disease-detection/internal/adapter/api"
	"github.com/manikandan032/plant-disease-detection/internal/domain/entity"
	"github.com/manikandan032/plant-disease-detection/internal/service"
)

func (n *Navigator) farmerMenu(ctx context.Context) bool {
	fmt.Fprintln(n.out, "\n=== Farmer Dashboard ===")
	fmt.Fprintln(n.out, "1) Diagnose a plant")
	fmt.Fprintln(n.out, "2) Marketplace")
	fmt.Fprintln(n.out, "3) Cart")
	fmt.Fprintln(n.out, "4) My orders")
	fmt.Fprintln(n.out, "5) Weather")
	fmt.Fprintln(n.out, "6) Chatbot")
	fmt.Fprintln(n.out, "7) Notifications")
	fmt.Fprintln(n.out, "8) Profile")
	fmt.Fprintln(n.out, "x) Sign out")
	fmt.Fprintln(n.out, "q) Quit")

	switch n.prompt("Choice") {
	case "1":
		n.renderDiagnose(ctx)
	case "2":
		n.renderMarketplace(ctx)
	case "3":
		n.renderCart(ctx)
	case "4":
		n.renderFarmerOrders(ctx)
	case "5":
		n.renderWeather(ctx)
	case "6":
		n.renderChat(ctx)
	case "7":
		n.renderNotifications(ctx)
	case "8":
		n.renderFarmerProfile(ctx)
	case "x":
		n.auth.Logout(ctx)
	case "q", "":
		return true
	}
	return false
}

func (n *Navigator) renderDiagnose(ctx context.Context) {
	path := n.prompt("Image path (empty to show history)")
	if path != "" {
		diagnosis, err := n.detection.DiagnoseFile(ctx, path)
		if err != nil {
			fmt.Fprintf(n.out, "Analysis failed: %v\n", err)
			return
		}
		status := "DISEASED"
		if diagnosis.IsHealthy {
			status = "HEALTHY"
		}
		fmt.Fprintf(n.out, "\n%s — %s (%.0f%% confidence, severity %s)\n",
			status, diagnosis.DiseaseName, diagnosis.Confidence*100, diagnosis.Severity)
		if diagnosis.Description != "" {
			fmt.Fprintln(n.out, diagnosis.Description)
		}
		if diagnosis.Treatment != "" {
			fmt.Fprintf(n.out, "Treatment: %s\n", diagnosis.Treatment)
		}
		if len(diagnosis.RecommendedProducts) > 0 {
			fmt.Fprintln(n.out, "Recommended products:")
			for _, f := range diagnosis.RecommendedProducts {
				fmt.Fprintf(n.out, "  - %s (%s)\n", f.Name, f.Type)
			}
		}
	}

	history, err := n.detection.History(ctx)
	if err != nil {
		fmt.Fprintf(n.out, "Could not load history: %v\n", err)
		return
	}
	if len(history) == 0 {
		fmt.Fprintln(n.out, "No scans yet.")
		return
	}
	rows := make([][]string, 0, len(history))
	for _, rec := range history {
		name := "Analyzing..."
		if rec.Prediction != nil {
			name = rec.Prediction.DiseaseName
		}
		rows = append(rows, []string{
			rec.UploadDate.Format("2006-01-02"),
			name,
			rec.ImageURL,
		})
	}
	table(n.out, []string{"DATE", "RESULT", "IMAGE"}, rows)
}

func (n *Navigator) renderMarketplace(ctx context.Context) {
	items, err := n.shop.Marketplace(ctx)
	if err != nil {
		fmt.Fprintf(n.out, "Could not load marketplace: %v\n", err)
		return
	}
	if len(items) == 0 {
		fmt.Fprintln(n.out, "No products available.")
		return
	}

	rows := make([][]string, 0, len(items))
	for i, item := range items {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			item.FertilizerName,
			money(item.Price),
			item.ShopOwnerName,
			strconv.Itoa(item.StockQuantity) + " in stock",
		})
	}
	table(n.out, []string{"#", "PRODUCT", "PRICE", "SHOP", "STOCK"}, rows)

	choice := n.prompt("Add to cart (# or empty)")
	if choice == "" {
		return
	}
	idx, err := strconv.Atoi(choice)
	if err != nil || idx < 1 || idx > len(items) {
		fmt.Fprintln(n.out, "No such product.")
		return
	}
	if _, err := n.carts.Add(ctx, items[idx-1]); err != nil {
		fmt.Fprintf(n.out, "Could not add to cart: %v\n", err)
		return
	}
	fmt.Fprintln(n.out, "Added to cart!")
}

func (n *Navigator) renderCart(ctx context.Context) {
	cart, err := n.carts.Get(ctx)
	if err != nil {
		fmt.Fprintf(n.out, "Could not load cart: %v\n", err)
		return
	}
	if cart.IsEmpty() {
		fmt.Fprintln(n.out, "Cart is empty.")
		return
	}

	rows := make([][]string, 0, len(cart.Items))
	for i, item := range cart.Items {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			fmt.Sprintf("%s (x%d)", item.Name, item.Quantity),
			item.ShopOwnerName,
			money(item.Price * float64(item.Quantity)),
		})
	}
	table(n.out, []string{"#", "ITEM", "SHOP", "SUBTOTAL"}, rows)
	fmt.Fprintf(n.out, "Total: %s\n", money(cart.Total()))

	switch n.prompt("c=checkout, r=remove item, empty=back") {
	case "c":
		n.runCheckout(ctx)
	case "r":
		idx, ok := n.promptInt("Item #")
		if !ok {
			return
		}
		if _, err := n.carts.RemoveAt(ctx, idx-1); err != nil {
			fmt.Fprintf(n.out, "Could not remove item: %v\n", err)
		}
	}
}

func (n *Navigator) runCheckout(ctx context.Context) {
	method := entity.PaymentMethodUPI
	if n.prompt("Payment method (upi/card)") == "card" {
		method = entity.PaymentMethodCard
	}

	result, err := n.checkout.Checkout(ctx, method)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotSignedIn):
			fmt.Fprintln(n.out, "You must be signed in to place orders.")
		case errors.Is(err, service.ErrCheckoutInFlight):
			fmt.Fprintln(n.out, "A checkout is already in progress.")
		default:
			var apiErr *api.Error
			if errors.As(err, &apiErr) {
				fmt.Fprintln(n.out, apiErr.Detail)
			} else {
				fmt.Fprintln(n.out, "Session expired or server unreachable. Please try again.")
			}
			if result != nil && len(result.Orders) > 0 {
				fmt.Fprintf(n.out, "%d order(s) were already placed before the failure; check 'My orders'.\n", len(result.Orders))
			}
		}
		return
	}

	switch {
	case len(result.Orders) == 0:
		fmt.Fprintln(n.out, "Cart is empty.")
	case result.Settled:
		fmt.Fprintln(n.out, "Payment successful! Your order has been placed.")
	case result.PayOrderID != 0:
		n.renderPaymentStep(ctx, result.PayOrderID)
	default:
		fmt.Fprintf(n.out, "%d order(s) placed! Check 'My orders' to pay.\n", len(result.Orders))
	}
}

func (n *Navigator) renderPaymentStep(ctx context.Context, orderID int64) {
	info, err := n.orders.PaymentInfo(ctx, orderID)
	if err != nil {
		fmt.Fprintf(n.out, "Order #%d placed, but payment info is unavailable right now: %v\n", orderID, err)
		return
	}
	renderPaymentInfo(n.out, orderID, info)
}

func (n *Navigator) renderFarmerOrders(ctx context.Context) {
	orders, err := n.orders.FarmerOrders(ctx)
	if err != nil {
		fmt.Fprintf(n.out, "Could not load orders: %v\n", err)
		return
	}
	if len(orders) == 0 {
		fmt.Fprintln(n.out, "No orders found.")
		return
	}

	rows := make([][]string, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, []string{
			fmt.Sprintf("#%d", o.OrderID),
			o.CreatedAt.Format("2006-01-02"),
			fmt.Sprintf("%d item(s)", len(o.Items)),
			money(o.TotalAmount),
			string(o.Status),
			o.PaymentStatus,
		})
	}
	table(n.out, []string{"ORDER", "DATE", "ITEMS", "TOTAL", "STATUS", "PAYMENT"}, rows)

	choice := n.prompt("Pay order (# or empty)")
	if choice == "" {
		return
	}
	id, err := strconv.ParseInt(choice, 10, 64)
	if err != nil {
		fmt.Fprintln(n.out, "Please enter an order number.")
		return
	}
	for _, o := range orders {
		if o.OrderID == id && o.Settled() {
			fmt.Fprintln(n.out, "Order is already paid.")
			return
		}
	}
	n.renderPaymentStep(ctx, id)
}

func (n *Navigator) renderWeather(ctx context.Context) {
	report, err := n.weather.Report(ctx)
	if err != nil {
		fmt.Fprintf(n.out, "Could not load weather: %v\n", err)
		return
	}

	c := report.Current
	fmt.Fprintf(n.out, "\n%s — %.0f°C, %s, humidity %d%%, wind %.0f km/h\n",
		c.Location, c.TempC, c.Condition, c.Humidity, c.WindKPH)

	if len(report.Alerts) == 0 {
		fmt.Fprintln(n.out, "No active weather alerts.")
	}
	for _, a := range report.Alerts {
		fmt.Fprintf(n.out, "! %s: %s\n", a.Title, a.Message)
	}

	if len(report.Forecast) > 0 {
		rows := make([][]string, 0, len(report.Forecast))
		for _, f := range report.Forecast {
			rows = append(rows, []string{f.Day, fmt.Sprintf("%.0f°C", f.TempC), f.Condition})
		}
		table(n.out, []string{"DAY", "TEMP", "CONDITIONS"}, rows)
	}
}

func (n *Navigator) renderChat(ctx context.Context) {
	for {
		message := n.prompt("You (empty to leave)")
		if message == "" {
			return
		}
		reply, err := n.profile.AskChatbot(ctx, message)
		if err != nil {
			fmt.Fprintln(n.out, "Sorry, I encountered an error.")
			return
		}
		fmt.Fprintf(n.out, "Bot: %s\n", reply)
	}
}

func (n *Navigator) renderNotifications(ctx context.Context) {
	notifs, err := n.profile.Notifications(ctx)
	if err != nil {
		fmt.Fprintf(n.out, "Could not load notifications: %v\n", err)
		return
	}
	if len(notifs) == 0 {
		fmt.Fprintln(n.out, "No new notifications.")
		return
	}
	for _, notif := range notifs {
		fmt.Fprintf(n.out, "[%s] %s (%s)\n", notif.Type, notif.Message, notif.CreatedAt.Format("2006-01-02"))
	}
}

func (n *Navigator) renderFarmerProfile(ctx context.Context) {
	user, err := n.profile.Me(ctx)
	if err != nil {
		fmt.Fprintf(n.out, "Could not load profile: %v\n", err)
		return
	}
	fmt.Fprintf(n.out, "\n%s <%s>\nLocation: %s\nCrops: %s\n", user.Name, user.Email, user.Location, user.CropsGrown)

	if n.prompt("Update profile? (y/n)") != "y" {
		return
	}
	update := entity.ProfileUpdate{
		Location:   n.prompt("Location"),
		CropsGrown: n.prompt("Crops grown"),
		Password:   n.prompt("New password (empty to keep)"),
	}
	if _, err := n.profile.Update(ctx, update); err != nil {
		fmt.Fprintf(n.out, "Failed to update profile: %v\n", err)
		return
	}
	fmt.Fprintln(n.out, "Profile updated successfully!")
}
