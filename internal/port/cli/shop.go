package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/manikandan032/plant-disease-detection/internal/domain/entity"
)

func (n *Navigator) shopMenu(ctx context.Context) bool {
	fmt.Fprintln(n.out, "\n=== Shop Dashboard ===")
	fmt.Fprintln(n.out, "1) Inventory")
	fmt.Fprintln(n.out, "2) Add product")
	fmt.Fprintln(n.out, "3) Orders")
	fmt.Fprintln(n.out, "4) Farmer queries")
	fmt.Fprintln(n.out, "5) Sales analytics")
	fmt.Fprintln(n.out, "6) Shop profile")
	fmt.Fprintln(n.out, "x) Sign out")
	fmt.Fprintln(n.out, "q) Quit")

	switch n.prompt("Choice") {
	case "1":
		n.renderInventory(ctx)
	case "2":
		n.renderAddProduct(ctx)
	case "3":
		n.renderShopOrders(ctx)
	case "4":
		n.renderQueries(ctx)
	case "5":
		n.renderShopAnalytics(ctx)
	case "6":
		n.renderShopProfile(ctx)
	case "x":
		n.auth.Logout(ctx)
	case "q", "":
		return true
	}
	return false
}

func (n *Navigator) renderInventory(ctx context.Context) {
	items, err := n.shop.Inventory(ctx)
	if err != nil {
		fmt.Fprintf(n.out, "Could not load inventory: %v\n", err)
		return
	}
	if len(items) == 0 {
		fmt.Fprintln(n.out, "No products in inventory.")
		return
	}
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{
			item.FertilizerName,
			item.Category,
			money(item.Price),
			strconv.Itoa(item.StockQuantity),
		})
	}
	table(n.out, []string{"PRODUCT", "CATEGORY", "PRICE", "STOCK"}, rows)
}

func (n *Navigator) renderAddProduct(ctx context.Context) {
	name := n.prompt("Product name")
	category := n.prompt("Category")
	price, ok := n.promptFloat("Price")
	if !ok {
		return
	}
	stock, ok := n.promptInt("Stock quantity")
	if !ok {
		return
	}
	disease := n.prompt("Effective against (disease, optional)")

	description := "Available at shop"
	if disease != "" {
		description = "Effective for: " + disease
	}

	imageURL := ""
	if path := n.prompt("Image file (optional)"); path != "" {
		file, err := os.Open(path)
		if err != nil {
			fmt.Fprintf(n.out, "Could not open image: %v\n", err)
			return
		}
		imageURL, err = n.shop.UploadProductImage(ctx, filepath.Base(path), file)
		file.Close()
		if err != nil {
			fmt.Fprintf(n.out, "Image upload failed: %v\n", err)
			return
		}
	}

	product := entity.ProductCreate{
		Name:          name,
		Category:      category,
		Price:         price,
		StockQuantity: stock,
		Description:   description,
		Type:          "Standard",
		ImageURL:      imageURL,
	}
	if _, err := n.shop.AddProduct(ctx, product); err != nil {
		fmt.Fprintf(n.out, "Failed: %v\n", err)
		return
	}
	fmt.Fprintln(n.out, "Product added successfully!")
}

func (n *Navigator) renderShopOrders(ctx context.Context) {
	orders, err := n.orders.ShopOrders(ctx)
	if err != nil {
		fmt.Fprintf(n.out, "Failed to load orders: %v\n", err)
		return
	}
	if len(orders) == 0 {
		fmt.Fprintln(n.out, "No orders yet.")
		return
	}

	rows := make([][]string, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, []string{
			fmt.Sprintf("#%d", o.OrderID),
			fmt.Sprintf("Farmer #%d", o.BuyerID),
			fmt.Sprintf("%d item(s)", len(o.Items)),
			money(o.TotalAmount),
			o.PaymentStatus,
			string(o.Status),
		})
	}
	table(n.out, []string{"ORDER", "BUYER", "ITEMS", "TOTAL", "PAYMENT", "STATUS"}, rows)

	choice := n.prompt("Update order status (# or empty)")
	if choice == "" {
		return
	}
	id, err := strconv.ParseInt(choice, 10, 64)
	if err != nil {
		fmt.Fprintln(n.out, "Please enter an order number.")
		return
	}
	status := entity.OrderStatus(n.prompt("New status (Pending/Paid/Shipped/Completed)"))
	switch status {
	case entity.OrderStatusPending, entity.OrderStatusPaid, entity.OrderStatusShipped, entity.OrderStatusCompleted:
	default:
		fmt.Fprintln(n.out, "Unknown status.")
		return
	}
	if err := n.orders.UpdateStatus(ctx, id, status); err != nil {
		fmt.Fprintf(n.out, "Failed to update order status: %v\n", err)
		return
	}
	fmt.Fprintf(n.out, "Order status updated to: %s\n", status)
}

func (n *Navigator) renderQueries(ctx context.Context) {
	queries, err := n.shop.Queries(ctx)
	if err != nil {
		fmt.Fprintf(n.out, "Could not load queries: %v\n", err)
		return
	}
	if len(queries) == 0 {
		fmt.Fprintln(n.out, "No farmer queries.")
		return
	}

	for _, q := range queries {
		fmt.Fprintf(n.out, "\n[%d] %s (%s): %q\n", q.QueryID, q.FarmerName, q.CreatedAt.Format("2006-01-02"), q.Message)
		if q.Reply != "" {
			fmt.Fprintf(n.out, "    You: %s\n", q.Reply)
		}
	}

	choice := n.prompt("Reply to query (# or empty)")
	if choice == "" {
		return
	}
	id, err := strconv.ParseInt(choice, 10, 64)
	if err != nil {
		fmt.Fprintln(n.out, "Please enter a query number.")
		return
	}
	reply := n.prompt("Reply")
	if err := n.shop.Reply(ctx, id, reply); err != nil {
		fmt.Fprintf(n.out, "Could not send reply: %v\n", err)
		return
	}
	fmt.Fprintln(n.out, "Reply sent.")
}

func (n *Navigator) renderShopAnalytics(ctx context.Context) {
	analytics, err := n.shop.Analytics(ctx)
	if err != nil {
		fmt.Fprintf(n.out, "Could not load analytics: %v\n", err)
		return
	}
	fmt.Fprintf(n.out, "\nTotal revenue: %s over %d order(s), %d pending\n",
		money(analytics.TotalRevenue), analytics.TotalOrders, analytics.PendingOrders)
	if len(analytics.MonthlyTrend) > 0 {
		months := []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
		rows := make([][]string, 0, len(analytics.MonthlyTrend))
		for i, v := range analytics.MonthlyTrend {
			if i >= len(months) {
				break
			}
			rows = append(rows, []string{months[i], money(v)})
		}
		table(n.out, []string{"MONTH", "SALES"}, rows)
	}
}

func (n *Navigator) renderShopProfile(ctx context.Context) {
	user, err := n.profile.Me(ctx)
	if err != nil {
		fmt.Fprintf(n.out, "Could not load profile: %v\n", err)
		return
	}
	fmt.Fprintf(n.out, "\n%s <%s>\nUPI: %s\nLicense: %s\nLocation: %s\n",
		user.Name, user.Email, user.UPIID, user.LicenseNumber, user.Location)

	if n.prompt("Update shop details? (y/n)") != "y" {
		return
	}
	update := entity.ProfileUpdate{
		UPIID:         n.prompt("UPI ID"),
		LicenseNumber: n.prompt("License number"),
		Location:      n.prompt("Location"),
		Password:      n.prompt("New password (empty to keep)"),
	}
	if _, err := n.profile.Update(ctx, update); err != nil {
		fmt.Fprintf(n.out, "Failed to update shop details: %v\n", err)
		return
	}
	fmt.Fprintln(n.out, "Shop details updated!")
}
