package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/manikandan032/plant-disease-detection/internal/domain/entity"
	"github.com/manikandan032/plant-disease-detection/internal/platform/logger"
	"github.com/manikandan032/plant-disease-detection/internal/service"
)

// Navigator drives the terminal UI. It asks the route guard where the
// session belongs and renders that page's menu; renderers share no state
// with each other except through the services.
type Navigator struct {
	auth      service.AuthService
	carts     service.CartService
	checkout  service.CheckoutService
	orders    service.OrderService
	shop      service.ShopService
	detection service.DetectionService
	profile   service.ProfileService
	admin     service.AdminService
	weather   service.WeatherService

	in  *bufio.Scanner
	out io.Writer
	log logger.Logger
}

type Services struct {
	Auth      service.AuthService
	Carts     service.CartService
	Checkout  service.CheckoutService
	Orders    service.OrderService
	Shop      service.ShopService
	Detection service.DetectionService
	Profile   service.ProfileService
	Admin     service.AdminService
	Weather   service.WeatherService
}

func NewNavigator(svcs Services, in io.Reader, out io.Writer, log logger.Logger) *Navigator {
	return &Navigator{
		auth:      svcs.Auth,
		carts:     svcs.Carts,
		checkout:  svcs.Checkout,
		orders:    svcs.Orders,
		shop:      svcs.Shop,
		detection: svcs.Detection,
		profile:   svcs.Profile,
		admin:     svcs.Admin,
		weather:   svcs.Weather,
		in:        bufio.NewScanner(in),
		out:       out,
		log:       log,
	}
}

// Run loops until the user quits or input ends. Every iteration re-runs the
// guard, so a forced logout (401 mid-action) lands back on the landing page.
func (n *Navigator) Run(ctx context.Context) error {
	for {
		page := n.auth.Guard(ctx, entity.PageLanding)
		var done bool
		switch page {
		case entity.PageFarmerHome:
			done = n.farmerMenu(ctx)
		case entity.PageShopOwnerHome:
			done = n.shopMenu(ctx)
		case entity.PageAdminHome:
			done = n.adminMenu(ctx)
		default:
			done = n.landingMenu(ctx)
		}
		if done {
			return nil
		}
	}
}

func (n *Navigator) landingMenu(ctx context.Context) bool {
	fmt.Fprintln(n.out, "\n=== PlantShield ===")
	fmt.Fprintln(n.out, "1) Sign in")
	fmt.Fprintln(n.out, "2) Register")
	fmt.Fprintln(n.out, "q) Quit")

	switch n.prompt("Choice") {
	case "1":
		n.signIn(ctx)
	case "2":
		n.register(ctx)
	case "q", "":
		return true
	}
	return false
}

func (n *Navigator) signIn(ctx context.Context) {
	email := n.prompt("Email")
	password := n.prompt("Password")
	role, err := n.auth.Login(ctx, email, password)
	if err != nil {
		fmt.Fprintln(n.out, "Login failed. Check credentials.")
		return
	}
	fmt.Fprintf(n.out, "Welcome! Signed in as %s.\n", role)
}

func (n *Navigator) register(ctx context.Context) {
	name := n.prompt("Name")
	email := n.prompt("Email")
	password := n.prompt("Password")
	role := entity.Role(n.prompt("Role (farmer/shop_owner)"))
	if role != entity.RoleFarmer && role != entity.RoleShopOwner {
		role = entity.RoleFarmer
	}
	if err := n.auth.Register(ctx, name, email, password, role); err != nil {
		fmt.Fprintf(n.out, "Registration failed: %v\n", err)
		return
	}
	fmt.Fprintln(n.out, "Registration success! Please sign in.")
}

// prompt reads one trimmed line; EOF yields the empty string.
func (n *Navigator) prompt(label string) string {
	fmt.Fprintf(n.out, "%s: ", label)
	if !n.in.Scan() {
		return ""
	}
	return strings.TrimSpace(n.in.Text())
}

func (n *Navigator) promptInt(label string) (int, bool) {
	raw := n.prompt(label)
	v, err := strconv.Atoi(raw)
	if err != nil {
		fmt.Fprintln(n.out, "Please enter a number.")
		return 0, false
	}
	return v, true
}

func (n *Navigator) promptFloat(label string) (float64, bool) {
	raw := n.prompt(label)
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		fmt.Fprintln(n.out, "Please enter a number.")
		return 0, false
	}
	return v, true
}
