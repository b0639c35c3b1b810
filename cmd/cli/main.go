package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"medcare-client/internal/app/config"
	"medcare-client/internal/app/contracts"
	"medcare-client/internal/app/drivers/database"
	"medcare-client/internal/app/drivers/logger"
	"medcare-client/internal/app/gateway"
	"medcare-client/internal/app/services/core/booking"
	"medcare-client/internal/app/services/core/cart"
	"medcare-client/internal/app/services/core/catalog"
	"medcare-client/internal/app/services/core/consultations"
	"medcare-client/internal/app/services/core/pharmacy"
	"medcare-client/internal/app/services/core/ratings"
	"medcare-client/internal/app/services/core/sessions"
	"medcare-client/internal/app/services/shared/sessionfile"
	"medcare-client/internal/app/services/shared/sessionredis"
	"medcare-client/internal/pkg/constvars"
	"medcare-client/internal/pkg/dto/responses"
	"medcare-client/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type app struct {
	Bootstrap     *config.Bootstrap
	Gateway       contracts.Gateway
	Sessions      contracts.SessionUsecase
	Catalog       contracts.CatalogUsecase
	Cart          contracts.CartLedger
	Booking       contracts.BookingFlow
	Consultations contracts.ConsultationUsecase
	Ratings       contracts.RatingUsecase
	Pharmacy      contracts.PharmacyUsecase
}

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	if location, err := time.LoadLocation(internalConfig.App.Timezone); err == nil {
		time.Local = location
	}

	application := bootstrapTheApp(driverConfig, internalConfig, zapLogger)

	ctx := context.Background()
	if err := application.Sessions.Restore(ctx); err != nil {
		log.Printf("Could not restore session: %v", err)
	}

	exitCode := run(ctx, application, os.Args[1:])

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := application.Bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
	os.Exit(exitCode)
}

func bootstrapTheApp(driverConfig *config.DriverConfig, internalConfig *config.InternalConfig, zapLogger *zap.Logger) *app {
	remoteGateway := gateway.NewRemoteGateway(internalConfig, zapLogger)

	bootstrap := &config.Bootstrap{
		Logger:         zapLogger,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	var storage contracts.SessionStorage
	if internalConfig.Session.Backend == constvars.SessionBackendRedis {
		redisClient := database.NewRedisClient(driverConfig)
		bootstrap.Redis = redisClient
		storage = sessionredis.NewSessionRedisStorage(redisClient)
	} else {
		storage = sessionfile.NewSessionFileStorage(internalConfig)
	}

	sessionUsecase := sessions.NewSessionUsecase(remoteGateway, storage, zapLogger)
	catalogUsecase := catalog.NewCatalogUsecase(remoteGateway, zapLogger)

	return &app{
		Bootstrap:     bootstrap,
		Gateway:       remoteGateway,
		Sessions:      sessionUsecase,
		Catalog:       catalogUsecase,
		Cart:          cart.NewCartLedger(remoteGateway, sessionUsecase, zapLogger),
		Booking:       booking.NewBookingFlow(remoteGateway, sessionUsecase, catalogUsecase, zapLogger),
		Consultations: consultations.NewConsultationUsecase(remoteGateway, zapLogger),
		Ratings:       ratings.NewRatingUsecase(remoteGateway, zapLogger),
		Pharmacy:      pharmacy.NewPharmacyUsecase(remoteGateway, zapLogger),
	}
}

func run(ctx context.Context, application *app, args []string) int {
	if len(args) == 0 {
		usage()
		return 2
	}

	err := dispatch(ctx, application, args[0], args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", exceptions.ClientMessage(err))
		return 1
	}
	return 0
}

func dispatch(ctx context.Context, application *app, command string, args []string) error {
	switch command {
	case "signup", "login":
		if len(args) < 2 {
			return fmt.Errorf("usage: %s <username> <password>", command)
		}
		var err error
		if command == "signup" {
			_, err = application.Sessions.Signup(ctx, args[0], args[1])
		} else {
			_, err = application.Sessions.Login(ctx, args[0], args[1])
		}
		if err != nil {
			return err
		}
		fmt.Printf("Logged in as %s\n", args[0])
		return nil

	case "logout":
		application.Sessions.Logout(ctx)
		fmt.Println("Logged out")
		return nil

	case "whoami":
		session := application.Sessions.Current()
		if session == nil {
			fmt.Println("Not logged in")
			return nil
		}
		fmt.Printf("%s (user %d)\n", session.Username, session.UserID)
		return nil

	case "health":
		if err := application.Gateway.Ping(ctx); err != nil {
			return err
		}
		fmt.Println("MedCare service is reachable")
		return nil

	case "doctors":
		snapshot := application.Catalog.Load(ctx)
		if snapshot.Err() != nil {
			return snapshot.Err()
		}
		for _, doctor := range snapshot.Doctors {
			fmt.Printf("%d\t%s\tslots: %s\n", doctor.ID, snapshot.DoctorLabel(doctor.ID), strings.Join(doctor.AvailableSlots, ", "))
		}
		return nil

	case "medicines":
		snapshot := application.Catalog.Load(ctx)
		if snapshot.Err() != nil {
			return snapshot.Err()
		}
		for _, medicine := range snapshot.Medicines {
			fmt.Printf("%d\t%s\t₹%.2f\tstock %d\n", medicine.ID, medicine.Name, medicine.Price, medicine.Stock)
		}
		return nil

	case "search":
		if len(args) < 1 {
			return fmt.Errorf("usage: search <name>")
		}
		results, err := application.Catalog.SearchMedicines(ctx, args[0])
		if err != nil {
			return err
		}
		for _, medicine := range results {
			fmt.Printf("%d\t%s\t₹%.2f\tstock %d\n", medicine.ID, medicine.Name, medicine.Price, medicine.Stock)
		}
		return nil

	case "book":
		if len(args) < 2 {
			return fmt.Errorf("usage: book <doctor_id> <time_slot>")
		}
		doctorID, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}
		if _, err := application.Booking.SelectDoctor(ctx, doctorID); err != nil {
			return err
		}
		if err := application.Booking.SelectSlot(args[1]); err != nil {
			return err
		}
		label, err := application.Booking.Submit(ctx)
		if err != nil {
			return err
		}
		if application.Booking.State() == contracts.BookingRejected {
			fmt.Println("Booking rejected:", application.Booking.Message())
			return nil
		}
		fmt.Printf("Appointment booked with %s\n", label)
		return nil

	case "appointments":
		session := application.Sessions.Current()
		if session == nil {
			return exceptions.ErrNotAuthenticated()
		}
		list, err := application.Consultations.Appointments(ctx, session.UserID)
		if err != nil {
			return err
		}
		snapshot := application.Catalog.Load(ctx)
		for _, appointment := range list {
			fmt.Printf("#%d\t%s\t%s\n", appointment.ID, appointment.TimeSlot, snapshot.DoctorLabel(appointment.DoctorID))
		}
		return nil

	case "cancel":
		if len(args) < 1 {
			return fmt.Errorf("usage: cancel <appointment_id>")
		}
		appointmentID, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}
		if _, err := application.Booking.Cancel(ctx, nil, appointmentID); err != nil {
			return err
		}
		fmt.Println("Appointment cancelled")
		return nil

	case "reschedule":
		if len(args) < 2 {
			return fmt.Errorf("usage: reschedule <appointment_id> <time_slot>")
		}
		appointmentID, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}
		result, err := application.Booking.Reschedule(ctx, appointmentID, args[1])
		if err != nil {
			return err
		}
		if result.Status != constvars.RemoteStatusSuccess {
			fmt.Println("Reschedule failed:", result.Message)
			return nil
		}
		fmt.Printf("Rescheduled to %s\n", result.NewTimeSlot)
		return nil

	case "consult":
		if len(args) < 1 {
			return fmt.Errorf("usage: consult <symptoms> [appointment_id]")
		}
		session := application.Sessions.Current()
		if session == nil {
			return exceptions.ErrNotAuthenticated()
		}
		appointmentID := 0
		if len(args) >= 2 {
			id, err := strconv.Atoi(args[1])
			if err != nil {
				return err
			}
			appointmentID = id
		} else {
			list, err := application.Consultations.Appointments(ctx, session.UserID)
			if err != nil {
				return err
			}
			appointmentID = consultations.DefaultAppointmentID(list)
		}
		result, err := application.Consultations.Consult(ctx, appointmentID, args[0])
		if err != nil {
			return err
		}
		fmt.Println("Diagnosis:", result.Diagnosis)
		for _, line := range result.Lines {
			fmt.Printf("  %s - Quantity: %d\n", line.Label(), line.Quantity)
		}
		return nil

	case "prescriptions":
		session := application.Sessions.Current()
		if session == nil {
			return exceptions.ErrNotAuthenticated()
		}
		views, err := application.Consultations.Prescriptions(ctx, session.UserID)
		if err != nil {
			return err
		}
		for _, view := range views {
			fmt.Printf("Appointment #%d\n", view.AppointmentID)
			for _, line := range view.Lines {
				fmt.Printf("  %s - Quantity: %d\n", line.Label(), line.Quantity)
			}
		}
		return nil

	case "buy-prescription":
		if len(args) < 1 {
			return fmt.Errorf("usage: buy-prescription <appointment_id>")
		}
		appointmentID, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}
		purchase, err := application.Consultations.BuyPrescription(ctx, appointmentID)
		if err != nil {
			return err
		}
		if purchase.Status != constvars.RemoteStatusSuccess {
			fmt.Println("Purchase failed:", purchase.Message)
			return nil
		}
		fmt.Printf("Prescription purchased, total ₹%.2f\n", purchase.TotalCost)
		return nil

	case "buy":
		if len(args) < 1 {
			return fmt.Errorf("usage: buy <medicine_id> [quantity]")
		}
		medicineID, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}
		qty := 1
		if len(args) >= 2 {
			qty, err = strconv.Atoi(args[1])
			if err != nil {
				return err
			}
		}
		snapshot := application.Catalog.Load(ctx)
		medicine, ok := snapshot.Medicine(medicineID)
		if !ok {
			return fmt.Errorf("medicine %d not found", medicineID)
		}
		application.Cart.Add(medicine, qty)
		purchase, err := application.Cart.Checkout(ctx)
		if err != nil {
			return err
		}
		if purchase.Status != constvars.RemoteStatusSuccess {
			fmt.Println("Order failed:", purchase.Message)
			return nil
		}
		fmt.Printf("Order placed, total ₹%.2f\n", purchase.TotalCost)
		return nil

	case "rating":
		if len(args) < 1 {
			return fmt.Errorf("usage: rating <doctor_id>")
		}
		doctorID, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}
		summary, err := application.Ratings.Fetch(ctx, doctorID)
		if err != nil {
			return err
		}
		printRating(doctorID, summary)
		return nil

	case "rate":
		if len(args) < 2 {
			return fmt.Errorf("usage: rate <doctor_id> <rating 1..5>")
		}
		doctorID, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}
		rating, err := strconv.Atoi(args[1])
		if err != nil {
			return err
		}
		session := application.Sessions.Current()
		if session == nil {
			return exceptions.ErrNotAuthenticated()
		}
		summary, err := application.Ratings.Submit(ctx, doctorID, session.UserID, rating)
		if err != nil {
			return err
		}
		printRating(doctorID, summary)
		return nil

	case "restock":
		if len(args) < 2 {
			return fmt.Errorf("usage: restock <medicine_id> <quantity>")
		}
		medicineID, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}
		quantity, err := strconv.Atoi(args[1])
		if err != nil {
			return err
		}
		result, err := application.Pharmacy.Restock(ctx, medicineID, quantity)
		if err != nil {
			return err
		}
		fmt.Printf("Medicine restocked, new stock: %d\n", result.NewStock)
		return nil

	case "sales":
		report, err := application.Pharmacy.SalesReport(ctx)
		if err != nil {
			return err
		}
		for _, sale := range report.MedicineSales {
			fmt.Printf("%s\t₹%.2f\n", sale.Name, sale.Revenue)
		}
		fmt.Printf("Total revenue: ₹%.2f\n", report.TotalRevenue)
		return nil

	default:
		usage()
		return fmt.Errorf("unknown command %q", command)
	}
}

func printRating(doctorID int, summary *responses.RatingSummary) {
	if summary.AverageRating == nil {
		fmt.Printf("Doctor %d: no ratings yet\n", doctorID)
		return
	}
	fmt.Printf("Doctor %d: %.1f (%d ratings)\n", doctorID, *summary.AverageRating, summary.NumRatings)
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: medcare <command> [args]

  signup <username> <password>
  login <username> <password>
  logout | whoami | health
  doctors | medicines | search <name>
  book <doctor_id> <time_slot>
  appointments | cancel <id> | reschedule <id> <slot>
  consult <symptoms> [appointment_id]
  prescriptions | buy-prescription <appointment_id>
  buy <medicine_id> [quantity]
  rating <doctor_id> | rate <doctor_id> <1..5>
  restock <medicine_id> <quantity> | sales`)
}
