package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/yonatan-reicher/staymarket-backend/config"
	"github.com/yonatan-reicher/staymarket-backend/internal/app/repository"
	"github.com/yonatan-reicher/staymarket-backend/internal/app/service"
	"github.com/yonatan-reicher/staymarket-backend/internal/db"
	"github.com/yonatan-reicher/staymarket-backend/internal/outcome"
)

// Seeds the database with a small demo marketplace: a handful of owners,
// customers and apartments plus reservations and reviews so the analytics
// endpoints have something to chew on.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	if err := db.Initialize(&cfg.Database); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	fmt.Print("This will insert demo data into the database. Proceed? (yes/no): ")
	var confirm string
	fmt.Scanln(&confirm)
	if confirm != "yes" && confirm != "y" {
		fmt.Println("Seed cancelled.")
		return
	}

	gdb := db.GetDB()
	owners := service.NewOwnerService(repository.NewOwnerRepository(gdb))
	customers := service.NewCustomerService(repository.NewCustomerRepository(gdb))
	apartments := service.NewApartmentService(repository.NewApartmentRepository(gdb))
	reservations := service.NewReservationService(repository.NewReservationRepository(gdb))
	reviews := service.NewReviewService(repository.NewReviewRepository(gdb), nil)

	failed := 0
	check := func(op string, o outcome.Outcome) {
		if o != outcome.OK {
			fmt.Printf("  %s: %s\n", op, o)
			failed++
		}
	}

	check("owner alice", owners.AddOwner(1, "Alice Cohen"))
	check("owner boris", owners.AddOwner(2, "Boris Levi"))
	check("owner carmen", owners.AddOwner(3, "Carmen Mizrahi"))

	check("customer dana", customers.AddCustomer(1, "Dana Peretz"))
	check("customer eyal", customers.AddCustomer(2, "Eyal Shapiro"))
	check("customer fay", customers.AddCustomer(3, "Fay Biton"))

	check("apartment 1", apartments.AddApartment(1, "12 Rothschild Blvd", "Tel Aviv", "Israel", 80))
	check("apartment 2", apartments.AddApartment(2, "5 Jaffa St", "Jerusalem", "Israel", 65))
	check("apartment 3", apartments.AddApartment(3, "3 HaNamal St", "Haifa", "Israel", 95))
	check("apartment 4", apartments.AddApartment(4, "21 Herzl St", "Tel Aviv", "Israel", 50))

	check("ownership 1-1", owners.AssignApartment(1, 1))
	check("ownership 1-4", owners.AssignApartment(1, 4))
	check("ownership 2-2", owners.AssignApartment(2, 2))
	check("ownership 3-3", owners.AssignApartment(3, 3))

	date := func(s string) time.Time {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			log.Fatal("bad seed date:", err)
		}
		return t
	}

	check("reservation d-1", reservations.MakeReservation(1, 1, date("2026-01-10"), date("2026-01-15"), 750))
	check("reservation e-1", reservations.MakeReservation(2, 1, date("2026-02-01"), date("2026-02-05"), 600))
	check("reservation d-2", reservations.MakeReservation(1, 2, date("2026-03-01"), date("2026-03-08"), 560))
	check("reservation f-3", reservations.MakeReservation(3, 3, date("2026-04-12"), date("2026-04-14"), 420))
	check("reservation e-4", reservations.MakeReservation(2, 4, date("2026-05-20"), date("2026-05-25"), 500))

	check("review d-1", reviews.AddReview(1, 1, date("2026-01-16"), 9, "Great location, would stay again"))
	check("review e-1", reviews.AddReview(2, 1, date("2026-02-06"), 7, "Nice place, a bit noisy"))
	check("review d-2", reviews.AddReview(1, 2, date("2026-03-09"), 6, "Decent but dated"))
	check("review f-3", reviews.AddReview(3, 3, date("2026-04-15"), 10, "Stunning sea view"))

	if failed > 0 {
		fmt.Printf("Seed finished with %d failed operations\n", failed)
		os.Exit(1)
	}
	fmt.Println("Seed completed successfully!")
}
