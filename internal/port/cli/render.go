package cli

import (
	"fmt"
	"io"
	"net/url"
	"strings"
	"text/tabwriter"

	"github.com/manikandan032/plant-disease-detection/internal/domain/entity"
)

// table writes rows as an aligned table.
func table(out io.Writer, headers []string, rows [][]string) {
	w := tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(headers, "\t"))
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	w.Flush()
}

func money(amount float64) string {
	return fmt.Sprintf("₹%.2f", amount)
}

// qrURL builds an image URL encoding the UPI string, for terminals that
// cannot draw the code themselves.
func qrURL(upi string) string {
	return "https://api.qrserver.com/v1/create-qr-code/?size=150x150&data=" + url.QueryEscape(upi)
}

func renderPaymentInfo(out io.Writer, orderID int64, info *entity.PaymentInfo) {
	fmt.Fprintf(out, "\n--- Payment for order #%d ---\n", orderID)
	fmt.Fprintf(out, "Amount: %s\n", money(info.Amount))
	payee := info.ShopOwnerName
	if payee == "" {
		payee = "Shop Owner"
	}
	fmt.Fprintf(out, "Pay to: %s\n", payee)
	if info.UPIString != "" {
		fmt.Fprintf(out, "UPI: %s\n", info.UPIString)
		fmt.Fprintf(out, "QR:  %s\n", qrURL(info.UPIString))
	} else {
		fmt.Fprintln(out, "UPI ID not available for this shop. Contact the shop owner to complete payment.")
	}
}
