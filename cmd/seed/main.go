package main

import (
	"log"
	"os"

	"legal-assist-be/internal/model"
	"legal-assist-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"gorm.io/datatypes"
)

func main() {
	// Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Seeding Lawyer Directory...")

	lawyers := []model.Lawyer{
		{Name: "Sarah Chen", Firm: "Chen & Associates", LegalArea: "tenancy", Jurisdiction: "NSW", Phone: "02 9000 1001", Email: "schen@chenassociates.com.au", Rating: 4.8},
		{Name: "Michael O'Brien", Firm: "O'Brien Legal", LegalArea: "employment", Jurisdiction: "VIC", Phone: "03 9000 2002", Email: "mobrien@obrienlegal.com.au", Rating: 4.6},
		{Name: "Priya Sharma", Firm: "Sharma Family Law", LegalArea: "family", Jurisdiction: "QLD", Phone: "07 3000 3003", Email: "priya@sharmafamilylaw.com.au", Rating: 4.9},
		{Name: "David Nguyen", Firm: "Nguyen Consumer Advocates", LegalArea: "consumer", Jurisdiction: "", Phone: "1300 400 404", Email: "help@nguyenadvocates.com.au", Rating: 4.5},
		{Name: "Emma Walsh", Firm: "Walsh Criminal Defence", LegalArea: "criminal", Jurisdiction: "NSW", Phone: "02 9000 5005", Email: "ewalsh@walshdefence.com.au", Rating: 4.7},
		{Name: "James Taylor", Firm: "Taylor Traffic Law", LegalArea: "traffic", Jurisdiction: "VIC", Phone: "03 9000 6006", Email: "jtaylor@taylortraffic.com.au", Rating: 4.4},
	}

	for _, l := range lawyers {
		var existing model.Lawyer
		if err := db.Where("name = ? AND firm = ?", l.Name, l.Firm).First(&existing).Error; err == nil {
			color.Yellow("Lawyer '%s' already exists, skipping...", l.Name)
			continue
		}
		if err := db.Create(&l).Error; err != nil {
			color.Red("Error creating lawyer '%s': %v", l.Name, err)
		} else {
			color.Green("Created lawyer: %s (%s, %s)", l.Name, l.LegalArea, l.Jurisdiction)
		}
	}

	color.Cyan("Seeding Crisis Resources...")

	resources := []model.CrisisResource{
		{Name: "Lifeline", Phone: "13 11 14", URL: "https://www.lifeline.org.au", Description: "24/7 crisis support and suicide prevention", Category: "self_harm", Jurisdiction: ""},
		{Name: "Beyond Blue", Phone: "1300 22 4636", URL: "https://www.beyondblue.org.au", Description: "Mental health support", Category: "self_harm", Jurisdiction: ""},
		{Name: "1800RESPECT", Phone: "1800 737 732", URL: "https://www.1800respect.org.au", Description: "24/7 family violence counselling", Category: "family_violence", Jurisdiction: ""},
		{Name: "Safe Steps", Phone: "1800 015 188", URL: "https://www.safesteps.org.au", Description: "Victorian family violence response centre", Category: "family_violence", Jurisdiction: "VIC"},
		{Name: "Kids Helpline", Phone: "1800 55 1800", URL: "https://kidshelpline.com.au", Description: "24/7 counselling for young people", Category: "child_welfare", Jurisdiction: ""},
		{Name: "Legal Aid NSW", Phone: "1300 888 529", URL: "https://www.legalaid.nsw.gov.au", Description: "Free legal help, including duty lawyers at court", Category: "criminal", Jurisdiction: "NSW"},
		{Name: "National Legal Aid", URL: "https://www.nationallegalaid.org", Description: "Free legal help, including duty lawyers at court", Category: "criminal", Jurisdiction: ""},
	}

	for _, r := range resources {
		var existing model.CrisisResource
		if err := db.Where("name = ? AND category = ?", r.Name, r.Category).First(&existing).Error; err == nil {
			color.Yellow("Resource '%s' already exists, skipping...", r.Name)
			continue
		}
		if err := db.Create(&r).Error; err != nil {
			color.Red("Error creating resource '%s': %v", r.Name, err)
		} else {
			color.Green("Created resource: %s (%s)", r.Name, r.Category)
		}
	}

	color.Cyan("Seeding Action Templates...")

	templates := []model.ActionTemplate{
		{
			Topic:        "parking_ticket",
			Jurisdiction: "",
			Title:        "Challenging a fine or infringement notice",
			Steps: datatypes.JSON(`[
				"Check every detail on the notice: registration, date, time, location",
				"Photograph the location, including any signage (or lack of it)",
				"Request an internal review in writing before the due date (this is free)",
				"Attach evidence: photos, receipts, medical certificates, statutory declaration",
				"If the review is rejected, elect to have the matter heard in court or tribunal",
				"If paying, ask about a payment plan or hardship provisions"
			]`),
		},
		{
			Topic:        "parking_ticket",
			Jurisdiction: "VIC",
			Title:        "Challenging an infringement in Victoria",
			Steps: datatypes.JSON(`[
				"Request an internal review through Fines Victoria before the due date",
				"Grounds include: exceptional circumstances, mistake of identity, or special circumstances",
				"Gather evidence: photos of signage, medical certificates, statutory declaration",
				"If refused, you can elect to go to the Magistrates' Court",
				"Apply for a payment plan through Fines Victoria if paying"
			]`),
		},
		{
			Topic:        "insurance_claim",
			Jurisdiction: "",
			Title:        "Disputing an insurance claim decision",
			Steps: datatypes.JSON(`[
				"Request the insurer's decision and reasons in writing",
				"Read the policy document, especially the exclusions cited",
				"Lodge a written complaint with the insurer's internal dispute resolution team",
				"The insurer must respond within 30 calendar days (45 for complex claims)",
				"If unresolved, lodge a free complaint with AFCA (afca.org.au, 1800 931 678)",
				"Keep copies of every letter, email, photo, and receipt"
			]`),
		},
	}

	for _, t := range templates {
		var existing model.ActionTemplate
		if err := db.Where("topic = ? AND jurisdiction = ?", t.Topic, t.Jurisdiction).First(&existing).Error; err == nil {
			color.Yellow("Template '%s/%s' already exists, skipping...", t.Topic, t.Jurisdiction)
			continue
		}
		if err := db.Create(&t).Error; err != nil {
			color.Red("Error creating template '%s': %v", t.Topic, err)
		} else {
			color.Green("Created template: %s (%s)", t.Topic, t.Jurisdiction)
		}
	}

	color.Cyan("Seeding Knowledge Corpus...")
	SeedKnowledgeDocuments(db)

	color.Cyan("Seeding completed!")
}
