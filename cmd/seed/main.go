package main

import (
	"time"

	"github.com/flightbase-api/internal/config"
	"github.com/flightbase-api/internal/constants"
	"github.com/flightbase-api/internal/logger"
	"github.com/flightbase-api/internal/models"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	airports := []models.Airport{
		{IATA: "FRA", ICAO: "EDDF", Name: "Frankfurt am Main"},
		{IATA: "MUC", ICAO: "EDDM", Name: "Munich"},
		{IATA: "JFK", ICAO: "KJFK", Name: "John F. Kennedy International"},
		{IATA: "LHR", ICAO: "EGLL", Name: "London Heathrow"},
		{IATA: "CDG", ICAO: "LFPG", Name: "Paris Charles de Gaulle"},
		{IATA: "AMS", ICAO: "EHAM", Name: "Amsterdam Schiphol"},
	}
	for _, airport := range airports {
		var existing models.Airport
		if err := models.DB.Where("iata = ?", airport.IATA).First(&existing).Error; err != nil {
			if err := models.DB.Create(&airport).Error; err != nil {
				stdLog.Printf("Failed to create airport %s: %v", airport.IATA, err)
			} else {
				stdLog.Printf("Created airport: %s", airport.IATA)
			}
		} else {
			stdLog.Printf("Airport already exists: %s", airport.IATA)
		}
	}

	airportIDs := map[string]uint{}
	var airportList []models.Airport
	if err := models.DB.Find(&airportList).Error; err != nil {
		stdLog.Printf("Failed to load airports: %v", err)
	}
	for _, airport := range airportList {
		airportIDs[airport.IATA] = airport.ID
	}

	airlines := []models.Airline{
		{IATA: "LH", Name: "Lufthansa", BaseAirportID: airportIDs["FRA"]},
		{IATA: "BA", Name: "British Airways", BaseAirportID: airportIDs["LHR"]},
		{IATA: "AF", Name: "Air France", BaseAirportID: airportIDs["CDG"]},
		{IATA: "KL", Name: "KLM", BaseAirportID: airportIDs["AMS"]},
	}
	for _, airline := range airlines {
		var existing models.Airline
		if err := models.DB.Where("iata = ?", airline.IATA).First(&existing).Error; err != nil {
			if err := models.DB.Create(&airline).Error; err != nil {
				stdLog.Printf("Failed to create airline %s: %v", airline.IATA, err)
			} else {
				stdLog.Printf("Created airline: %s", airline.IATA)
			}
		} else {
			stdLog.Printf("Airline already exists: %s", airline.IATA)
		}
	}

	airlineIDs := map[string]uint{}
	var airlineList []models.Airline
	if err := models.DB.Find(&airlineList).Error; err != nil {
		stdLog.Printf("Failed to load airlines: %v", err)
	}
	for _, airline := range airlineList {
		airlineIDs[airline.IATA] = airline.ID
	}

	airplaneTypes := []models.AirplaneType{
		{Identifier: "A320-200", Description: "Airbus A320-200 narrow body"},
		{Identifier: "A350-900", Description: "Airbus A350-900 wide body"},
		{Identifier: "B737-800", Description: "Boeing 737-800 narrow body"},
		{Identifier: "B777-300ER", Description: "Boeing 777-300ER wide body"},
	}
	for _, airplaneType := range airplaneTypes {
		var existing models.AirplaneType
		if err := models.DB.Where("identifier = ?", airplaneType.Identifier).First(&existing).Error; err != nil {
			if err := models.DB.Create(&airplaneType).Error; err != nil {
				stdLog.Printf("Failed to create airplane type %s: %v", airplaneType.Identifier, err)
			} else {
				stdLog.Printf("Created airplane type: %s", airplaneType.Identifier)
			}
		} else {
			stdLog.Printf("Airplane type already exists: %s", airplaneType.Identifier)
		}
	}

	typeIDs := map[string]uint{}
	var typeList []models.AirplaneType
	if err := models.DB.Find(&typeList).Error; err != nil {
		stdLog.Printf("Failed to load airplane types: %v", err)
	}
	for _, airplaneType := range typeList {
		typeIDs[airplaneType.Identifier] = airplaneType.ID
	}

	var airplaneCount int64
	models.DB.Model(&models.Airplane{}).Count(&airplaneCount)
	if airplaneCount == 0 {
		airplanes := []models.Airplane{
			{Capacity: 180, TypeID: typeIDs["A320-200"], AirlineID: airlineIDs["LH"]},
			{Capacity: 325, TypeID: typeIDs["A350-900"], AirlineID: airlineIDs["LH"]},
			{Capacity: 189, TypeID: typeIDs["B737-800"], AirlineID: airlineIDs["KL"]},
			{Capacity: 396, TypeID: typeIDs["B777-300ER"], AirlineID: airlineIDs["BA"]},
		}
		for i := range airplanes {
			if err := models.DB.Create(&airplanes[i]).Error; err != nil {
				stdLog.Printf("Failed to create airplane: %v", err)
			}
		}
		stdLog.Printf("Created %d airplanes", len(airplanes))
	}

	var flightCount int64
	models.DB.Model(&models.Flight{}).Count(&flightCount)
	if flightCount == 0 {
		var airplaneList []models.Airplane
		if err := models.DB.Find(&airplaneList).Error; err != nil || len(airplaneList) == 0 {
			stdLog.Printf("Failed to load airplanes, skipping flight seed: %v", err)
		} else {
			flights := []models.Flight{
				{FlightNo: "LH400", FromID: airportIDs["FRA"], ToID: airportIDs["JFK"], Departure: "10:30", Arrival: "13:15", AirlineID: airlineIDs["LH"], AirplaneID: airplaneList[0].ID},
				{FlightNo: "LH401", FromID: airportIDs["JFK"], ToID: airportIDs["FRA"], Departure: "16:05", Arrival: "05:45", AirlineID: airlineIDs["LH"], AirplaneID: airplaneList[0].ID},
				{FlightNo: "BA117", FromID: airportIDs["LHR"], ToID: airportIDs["JFK"], Departure: "08:20", Arrival: "11:10", AirlineID: airlineIDs["BA"], AirplaneID: airplaneList[len(airplaneList)-1].ID},
				{FlightNo: "KL641", FromID: airportIDs["AMS"], ToID: airportIDs["JFK"], Departure: "09:50", Arrival: "12:20", AirlineID: airlineIDs["KL"], AirplaneID: airplaneList[len(airplaneList)-1].ID},
			}
			for i := range flights {
				if err := models.DB.Create(&flights[i]).Error; err != nil {
					stdLog.Printf("Failed to create flight %s: %v", flights[i].FlightNo, err)
				}
			}
			stdLog.Printf("Created %d flights", len(flights))
		}
	}

	var scheduleCount int64
	models.DB.Model(&models.FlightSchedule{}).Count(&scheduleCount)
	if scheduleCount == 0 {
		base := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
		schedules := []models.FlightSchedule{
			{
				FlightNo:  "LH400",
				FromID:    airportIDs["FRA"],
				ToID:      airportIDs["JFK"],
				Departure: base.Add(10*time.Hour + 30*time.Minute),
				Arrival:   base.Add(13*time.Hour + 15*time.Minute),
				AirlineID: airlineIDs["LH"],
				Monday:    true, Wednesday: true, Friday: true, Sunday: true,
			},
			{
				FlightNo:  "BA117",
				FromID:    airportIDs["LHR"],
				ToID:      airportIDs["JFK"],
				Departure: base.Add(8*time.Hour + 20*time.Minute),
				Arrival:   base.Add(11*time.Hour + 10*time.Minute),
				AirlineID: airlineIDs["BA"],
				Monday:    true, Tuesday: true, Thursday: true, Saturday: true,
			},
		}
		for i := range schedules {
			if err := models.DB.Create(&schedules[i]).Error; err != nil {
				stdLog.Printf("Failed to create flight schedule %s: %v", schedules[i].FlightNo, err)
			}
		}
		stdLog.Printf("Created %d flight schedules", len(schedules))
	}

	var passengerCount int64
	models.DB.Model(&models.Passenger{}).Count(&passengerCount)
	if passengerCount == 0 {
		passengers := []models.Passenger{
			{FirstName: "Anna", LastName: "Schmidt", PassportNo: "C01X00T48"},
			{FirstName: "James", LastName: "Miller", PassportNo: "545402022"},
			{FirstName: "Marie", LastName: "Dubois", PassportNo: "19AC34567"},
		}
		for i := range passengers {
			if err := models.DB.Create(&passengers[i]).Error; err != nil {
				stdLog.Printf("Failed to create passenger %s: %v", passengers[i].PassportNo, err)
			}
		}
		stdLog.Printf("Created %d passengers", len(passengers))
	}

	var bookingCount int64
	models.DB.Model(&models.Booking{}).Count(&bookingCount)
	if bookingCount == 0 {
		var firstFlight models.Flight
		var firstPassenger models.Passenger
		if err := models.DB.First(&firstFlight).Error; err == nil {
			if err := models.DB.First(&firstPassenger).Error; err == nil {
				booking := models.Booking{
					FlightID:    firstFlight.ID,
					PassengerID: firstPassenger.ID,
					Seat:        "12A",
					Price:       decimal.NewFromFloat(499.90),
				}
				if err := models.DB.Create(&booking).Error; err != nil {
					stdLog.Printf("Failed to create booking: %v", err)
				} else {
					stdLog.Printf("Created demo booking on flight %s", firstFlight.FlightNo)
				}
			}
		}
	}

	seedStaff(stdLog)
}

type printfLogger interface {
	Printf(format string, v ...interface{})
}

func seedStaff(stdLog printfLogger) {
	staffAccounts := []struct {
		Username  string
		Email     string
		Password  string
		FirstName string
		LastName  string
		Role      string
	}{
		{"admin", "admin@flightbase.local", "Admin123!", "System", "Administrator", constants.RoleAdmin},
		{"operator", "operator@flightbase.local", "Operator123!", "Test", "Operator", constants.RoleOperator},
	}

	for _, account := range staffAccounts {
		var existing models.Staff
		if err := models.DB.Where("username = ?", account.Username).First(&existing).Error; err == nil {
			stdLog.Printf("Staff already exists: %s", account.Username)
			continue
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(account.Password), bcrypt.DefaultCost)
		if err != nil {
			stdLog.Printf("Failed to hash password for %s: %v", account.Username, err)
			continue
		}
		staff := models.Staff{
			Username:     account.Username,
			Email:        account.Email,
			PasswordHash: string(hash),
			FirstName:    account.FirstName,
			LastName:     account.LastName,
			Role:         account.Role,
			IsActive:     true,
		}
		if err := models.DB.Create(&staff).Error; err != nil {
			stdLog.Printf("Failed to create staff %s: %v", account.Username, err)
		} else {
			stdLog.Printf("Created staff: %s", account.Username)
		}
	}
}
