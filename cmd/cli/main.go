// fitzone-cli is a terminal front-end for the FitZone API. It keeps its
// session in a state file and drives the same form controller and REST
// client the rest of the client code uses.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/ianishdubey/FitZoneBack/internal/client/api"
	"github.com/ianishdubey/FitZoneBack/internal/client/authform"
	"github.com/ianishdubey/FitZoneBack/internal/client/session"
)

func main() {
	serverURL := flag.String("server", envOr("FITZONE_SERVER", "http://localhost:5000"), "API base URL")
	statePath := flag.String("state", defaultStatePath(), "session state file")
	email := flag.String("email", "", "email address")
	password := flag.String("password", "", "password")
	confirm := flag.String("confirm", "", "password confirmation (register)")
	firstName := flag.String("first", "", "first name (register)")
	lastName := flag.String("last", "", "last name (register)")
	phone := flag.String("phone", "", "phone number (optional)")
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
		os.Exit(2)
	}

	store := session.NewStore(*statePath)
	if err := store.Load(); err != nil {
		log.Fatalf("Failed to load session: %v", err)
	}
	client := api.New(*serverURL, store)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cmd := flag.Arg(0)
	var err error
	switch cmd {
	case "register":
		err = runAuth(ctx, client, store, authform.ModeSignUp, authform.FormData{
			FirstName:       *firstName,
			LastName:        *lastName,
			Email:           *email,
			Password:        *password,
			ConfirmPassword: *confirm,
			Phone:           *phone,
		})
	case "login":
		err = runAuth(ctx, client, store, authform.ModeSignIn, authform.FormData{
			Email:    *email,
			Password: *password,
		})
	case "logout":
		err = store.Clear()
		if err == nil {
			fmt.Println("Logged out")
		}
	case "whoami":
		if user := store.CurrentUser(); user != nil && store.IsAuthenticated() {
			fmt.Printf("%s %s <%s> (%s)\n", user.FirstName, user.LastName, user.Email, user.MembershipType)
		} else {
			fmt.Println("Not signed in")
		}
	case "profile":
		err = showProfile(ctx, client)
	case "programs":
		err = listPrograms(ctx, client)
	case "purchase":
		if flag.NArg() < 2 {
			err = errors.New("usage: purchase <program-id>")
			break
		}
		if err = client.PurchaseProgram(ctx, flag.Arg(1)); err == nil {
			fmt.Println("Program purchased")
		}
	case "my-programs":
		err = listPurchased(ctx, client)
	case "membership":
		if flag.NArg() < 3 {
			err = errors.New("usage: membership <plan> <amount>")
			break
		}
		var amount float64
		if _, scanErr := fmt.Sscanf(flag.Arg(2), "%f", &amount); scanErr != nil {
			err = fmt.Errorf("invalid amount %q", flag.Arg(2))
			break
		}
		err = createMembership(ctx, client, store, flag.Arg(1), amount)
	case "health":
		var status *api.HealthStatus
		if status, err = client.Health(ctx); err == nil {
			fmt.Printf("%s: %s (%s)\n", status.Status, status.Message, status.Timestamp)
		}
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func runAuth(
	ctx context.Context,
	client *api.Client,
	store *session.Store,
	mode authform.Mode,
	form authform.FormData,
) error {
	controller := authform.NewController(client, store)
	controller.SwitchMode(mode)

	if err := controller.Submit(ctx, form); err != nil {
		if errors.Is(err, authform.ErrValidation) {
			for field, msg := range controller.FieldErrors() {
				fmt.Fprintf(os.Stderr, "%s: %s\n", field, msg)
			}
			return errors.New("validation failed")
		}
		if msg := controller.APIError(); msg != "" {
			return errors.New(msg)
		}
		return err
	}

	user := store.CurrentUser()
	if mode == authform.ModeSignUp {
		fmt.Printf("Account created for %s %s\n", user.FirstName, user.LastName)
	} else {
		fmt.Printf("Signed in as %s %s\n", user.FirstName, user.LastName)
	}
	return nil
}

func showProfile(ctx context.Context, client *api.Client) error {
	user, err := client.Profile(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("%s %s <%s>\n", user.FirstName, user.LastName, user.Email)
	fmt.Printf("Membership: %s\n", user.MembershipType)
	fmt.Printf("Member since: %s\n", user.JoinDate.Format("2006-01-02"))
	if len(user.PurchasedPrograms) > 0 {
		fmt.Printf("Programs: %v\n", user.PurchasedPrograms)
	}
	return nil
}

func listPrograms(ctx context.Context, client *api.Client) error {
	programs, err := client.Programs(ctx)
	if err != nil {
		return err
	}
	for _, p := range programs {
		fmt.Printf("%-20s %-24s %-12s $%.2f\n", p.ID, p.Title, p.Level, p.Price)
	}
	return nil
}

func listPurchased(ctx context.Context, client *api.Client) error {
	programs, err := client.PurchasedPrograms(ctx)
	if err != nil {
		return err
	}
	if len(programs) == 0 {
		fmt.Println("No purchased programs")
		return nil
	}
	sort.Strings(programs)
	for _, id := range programs {
		fmt.Println(id)
	}
	return nil
}

func createMembership(
	ctx context.Context,
	client *api.Client,
	store *session.Store,
	planType string,
	amount float64,
) error {
	membership, err := client.CreateMembership(ctx, planType, amount)
	if err != nil {
		return err
	}
	fmt.Printf("Membership %s active until %s (payment %s)\n",
		membership.PlanType, membership.EndDate.Format("2006-01-02"), membership.PaymentStatus)

	// The tier changed server-side; refresh the cached user to match.
	if user := store.CurrentUser(); user != nil {
		updated := *user
		updated.MembershipType = membership.PlanType
		return store.UpdateUser(&updated)
	}
	return nil
}

func defaultStatePath() string {
	if custom := os.Getenv("FITZONE_STATE"); custom != "" {
		return custom
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".fitzone.json"
	}
	return filepath.Join(home, ".fitzone", "session.json")
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: fitzone-cli [flags] <command>

commands:
  register    create an account (-first -last -email -password -confirm [-phone])
  login       sign in (-email -password)
  logout      clear the local session
  whoami      show the cached session user
  profile     fetch the full profile
  programs    list the program catalog
  purchase    purchase a program: purchase <program-id>
  my-programs list purchased program ids
  membership  create a membership: membership <plan> <amount>
  health      check API health`)
}
