package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/manikandan032/plant-disease-detection/internal/domain/entity"
)

func (n *Navigator) adminMenu(ctx context.Context) bool {
	fmt.Fprintln(n.out, "\n=== Admin Dashboard ===")
	fmt.Fprintln(n.out, "1) Users")
	fmt.Fprintln(n.out, "2) Disease knowledge base")
	fmt.Fprintln(n.out, "3) Analytics")
	fmt.Fprintln(n.out, "4) Settings")
	fmt.Fprintln(n.out, "x) Sign out")
	fmt.Fprintln(n.out, "q) Quit")

	switch n.prompt("Choice") {
	case "1":
		n.renderUsers(ctx)
	case "2":
		n.renderDiseases(ctx)
	case "3":
		n.renderAdminAnalytics(ctx)
	case "4":
		n.renderAdminSettings(ctx)
	case "x":
		n.auth.Logout(ctx)
	case "q", "":
		return true
	}
	return false
}

func (n *Navigator) renderUsers(ctx context.Context) {
	users, err := n.admin.Users(ctx)
	if err != nil {
		fmt.Fprintf(n.out, "Failed to load users: %v\n", err)
		return
	}
	if len(users) == 0 {
		fmt.Fprintln(n.out, "No users found.")
		return
	}

	rows := make([][]string, 0, len(users))
	for _, u := range users {
		status := "Active"
		if !u.IsActive {
			status = "Inactive"
		}
		rows = append(rows, []string{
			strconv.FormatInt(u.UserID, 10),
			u.Name,
			u.Email,
			string(u.Role),
			status,
		})
	}
	table(n.out, []string{"ID", "NAME", "EMAIL", "ROLE", "STATUS"}, rows)

	choice := n.prompt("Toggle user status (id or empty)")
	if choice == "" {
		return
	}
	id, err := strconv.ParseInt(choice, 10, 64)
	if err != nil {
		fmt.Fprintln(n.out, "Please enter a user id.")
		return
	}
	for _, u := range users {
		if u.UserID == id {
			if err := n.admin.SetUserStatus(ctx, id, !u.IsActive); err != nil {
				fmt.Fprintf(n.out, "Failed to update status: %v\n", err)
			}
			return
		}
	}
	fmt.Fprintln(n.out, "No such user.")
}

func (n *Navigator) renderDiseases(ctx context.Context) {
	diseases, err := n.admin.Diseases(ctx)
	if err != nil {
		fmt.Fprintf(n.out, "Could not load diseases: %v\n", err)
		return
	}
	for _, d := range diseases {
		fmt.Fprintf(n.out, "\n[%d] %s (%s)\n    %s\n    Treatment: %s\n",
			d.DiseaseID, d.Name, d.CropName, d.Description, d.Treatment)
	}

	switch n.prompt("a=add, e=edit, empty=back") {
	case "a":
		n.editDisease(ctx, entity.DiseaseInfo{})
	case "e":
		id, ok := n.promptInt("Disease id")
		if !ok {
			return
		}
		for _, d := range diseases {
			if d.DiseaseID == int64(id) {
				n.editDisease(ctx, d)
				return
			}
		}
		fmt.Fprintln(n.out, "No such disease.")
	}
}

func (n *Navigator) editDisease(ctx context.Context, disease entity.DiseaseInfo) {
	if name := n.prompt("Name"); name != "" {
		disease.Name = name
	}
	if crop := n.prompt("Crop"); crop != "" {
		disease.CropName = crop
	}
	if desc := n.prompt("Description"); desc != "" {
		disease.Description = desc
	}
	if symptoms := n.prompt("Symptoms"); symptoms != "" {
		disease.Symptoms = symptoms
	}
	if treatment := n.prompt("Treatment"); treatment != "" {
		disease.Treatment = treatment
	}

	if _, err := n.admin.SaveDisease(ctx, disease); err != nil {
		fmt.Fprintf(n.out, "Failed: %v\n", err)
		return
	}
	if disease.DiseaseID == 0 {
		fmt.Fprintln(n.out, "Disease added successfully!")
	} else {
		fmt.Fprintln(n.out, "Disease updated successfully!")
	}
}

func (n *Navigator) renderAdminAnalytics(ctx context.Context) {
	stats, err := n.admin.Analytics(ctx)
	if err != nil {
		fmt.Fprintf(n.out, "Could not load analytics: %v\n", err)
		return
	}
	fmt.Fprintf(n.out, "\nUsers: %d\nScans: %d\nDiseased: %d\nModel accuracy: %.1f%%\n",
		stats.TotalUsers, stats.TotalImages, stats.DiseasedCount, stats.ModelAccuracy)
	if len(stats.ScanTrend) > 0 {
		months := []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"}
		rows := make([][]string, 0, len(stats.ScanTrend))
		for i, v := range stats.ScanTrend {
			if i >= len(months) {
				break
			}
			rows = append(rows, []string{months[i], fmt.Sprintf("%.0f", v)})
		}
		table(n.out, []string{"MONTH", "DETECTIONS"}, rows)
	}
}

func (n *Navigator) renderAdminSettings(ctx context.Context) {
	password := n.prompt("New admin password (empty to skip)")
	if password == "" {
		fmt.Fprintln(n.out, "Configuration saved.")
		return
	}
	if _, err := n.profile.Update(ctx, entity.ProfileUpdate{Password: password}); err != nil {
		fmt.Fprintf(n.out, "Failed to update password: %v\n", err)
		return
	}
	fmt.Fprintln(n.out, "Configuration saved & password updated.")
}
