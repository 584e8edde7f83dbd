package app

import (
	"fmt"

	"orders-demo/internal/config"
	"orders-demo/internal/domain"
	"orders-demo/internal/service/auth"
)

// seedNextOrderID is the first ID handed out for orders created at runtime.
const seedNextOrderID = 3001

// defaultCredentials returns the built-in demo credential tables, used when
// no credentials file is configured.
func defaultCredentials() *config.Credentials {
	return &config.Credentials{
		Users: []config.UserCredential{
			{Username: "user_a", Password: "password_a", Role: "user"},
			{Username: "user_b", Password: "password_b", Role: "user"},
			{Username: "admin", Password: "admin_password", Role: "admin"},
		},
		ServiceAccounts: []config.ServiceAccountCredential{
			{ClientID: "service_account", ClientSecret: "service_secret", Role: "admin"},
		},
	}
}

// credentialTables converts configuration records into store credentials,
// validating roles up front so a bad table fails at startup rather than at
// first login.
func credentialTables(creds *config.Credentials) ([]auth.Credential, []auth.Credential, error) {
	users := make([]auth.Credential, 0, len(creds.Users))
	for _, u := range creds.Users {
		role, err := domain.ParseRole(u.Role)
		if err != nil {
			return nil, nil, fmt.Errorf("user %q: %w", u.Username, err)
		}
		users = append(users, auth.Credential{ID: u.Username, Secret: u.Password, Role: role})
	}
	serviceAccounts := make([]auth.Credential, 0, len(creds.ServiceAccounts))
	for _, sa := range creds.ServiceAccounts {
		role, err := domain.ParseRole(sa.Role)
		if err != nil {
			return nil, nil, fmt.Errorf("service account %q: %w", sa.ClientID, err)
		}
		serviceAccounts = append(serviceAccounts, auth.Credential{ID: sa.ClientID, Secret: sa.ClientSecret, Role: role})
	}
	return users, serviceAccounts, nil
}

// seedOrders returns the demo order fixture: three orders for user_a, two
// for user_b.
func seedOrders() []domain.Order {
	return []domain.Order{
		{OrderID: 1001, UserID: "user_a", ProductName: "Widget A", Price: 99.99, Status: domain.OrderShipped, CreatedAt: "2024-01-15T10:30:00Z"},
		{OrderID: 1002, UserID: "user_a", ProductName: "Widget B", Price: 149.99, Status: domain.OrderPending, CreatedAt: "2024-01-16T14:20:00Z"},
		{OrderID: 1003, UserID: "user_a", ProductName: "Widget C", Price: 199.99, Status: domain.OrderDelivered, CreatedAt: "2024-01-17T09:15:00Z"},
		{OrderID: 2001, UserID: "user_b", ProductName: "Gadget X", Price: 299.99, Status: domain.OrderPending, CreatedAt: "2024-01-18T11:45:00Z"},
		{OrderID: 2002, UserID: "user_b", ProductName: "Gadget Y", Price: 399.99, Status: domain.OrderShipped, CreatedAt: "2024-01-19T16:00:00Z"},
	}
}

// seedProfiles returns the demo profile fixture.
func seedProfiles() []domain.Profile {
	return []domain.Profile{
		{UserID: "user_a", Email: "user_a@example.com", FullName: "Alice Anderson", Phone: strPtr("+1-555-0101"), Address: strPtr("123 Main St, Anytown, USA")},
		{UserID: "user_b", Email: "user_b@example.com", FullName: "Bob Brown", Phone: strPtr("+1-555-0102"), Address: strPtr("456 Oak Ave, Somewhere, USA")},
		{UserID: "admin", Email: "admin@example.com", FullName: "Admin User", Phone: strPtr("+1-555-0100"), Address: strPtr("789 Admin Blvd, HQ, USA")},
	}
}

func strPtr(s string) *string { return &s }
