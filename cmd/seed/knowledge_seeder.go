package main

import (
	"os"

	"legal-assist-be/internal/model"
	"legal-assist-be/pkg/embedding"

	"github.com/fatih/color"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type seedDocument struct {
	Title        string
	Content      string
	Source       string
	URL          string
	LegalArea    string
	Jurisdiction string
}

var seedDocuments = []seedDocument{
	{
		Title:        "Rent increases in New South Wales",
		Content:      "Under the Residential Tenancies Act 2010 (NSW), rent for a periodic agreement can only be increased once every 12 months. The landlord must give at least 60 days written notice of the increase. Tenants who consider an increase excessive can apply to the NSW Civil and Administrative Tribunal (NCAT) within 30 days of receiving the notice.",
		Source:       "Residential Tenancies Act 2010 (NSW)",
		URL:          "https://legislation.nsw.gov.au/view/html/inforce/current/act-2010-042",
		LegalArea:    "tenancy",
		Jurisdiction: "NSW",
	},
	{
		Title:        "Bond refunds and claims",
		Content:      "A rental bond must be lodged with the state bond authority, not held by the landlord. At the end of the tenancy the bond is refunded unless the landlord makes a claim for unpaid rent, damage beyond fair wear and tear, or cleaning costs. Disputed claims are decided by the relevant tribunal, and the party making the claim carries the burden of proving it.",
		Source:       "Residential tenancy bond rules",
		LegalArea:    "tenancy",
		Jurisdiction: "",
	},
	{
		Title:        "Unfair dismissal eligibility",
		Content:      "Under the Fair Work Act 2009 (Cth), an employee can apply for an unfair dismissal remedy if they have completed the minimum employment period (6 months, or 12 months for small business employers) and earn below the high income threshold or are covered by an award or enterprise agreement. Applications must be lodged with the Fair Work Commission within 21 days of the dismissal taking effect.",
		Source:       "Fair Work Act 2009 (Cth)",
		URL:          "https://www.legislation.gov.au/Series/C2009A00028",
		LegalArea:    "employment",
		Jurisdiction: "",
	},
	{
		Title:        "Disputing a parking fine",
		Content:      "Most states allow a parking fine to be challenged by an internal review request to the issuing authority before electing to have the matter heard in court. Grounds include incorrect vehicle details, unclear signage, a medical emergency, or the vehicle being sold before the offence. Review requests usually must be lodged before the due date on the notice, and the fine is put on hold while the review is decided.",
		Source:       "Fines administration guidance",
		LegalArea:    "traffic",
		Jurisdiction: "",
	},
	{
		Title:        "Consumer guarantees for goods",
		Content:      "The Australian Consumer Law provides automatic guarantees that goods are of acceptable quality, fit for purpose and match their description. If a failure is major the consumer chooses the remedy: refund, replacement or compensation. If the failure is minor the seller may choose to repair within a reasonable time. These guarantees cannot be excluded by contract and sit alongside any manufacturer warranty.",
		Source:       "Competition and Consumer Act 2010 (Cth), Schedule 2",
		URL:          "https://www.accc.gov.au/consumers/buying-products-and-services/consumer-rights-and-guarantees",
		LegalArea:    "consumer",
		Jurisdiction: "",
	},
	{
		Title:        "Insurance claim denial and internal dispute resolution",
		Content:      "An insurer that denies a claim must give written reasons. The policyholder can ask for a review through the insurer's internal dispute resolution process, which must respond within 30 days. If the outcome is unsatisfactory, a complaint can be made to the Australian Financial Complaints Authority (AFCA) within 2 years of the insurer's final decision, at no cost to the consumer.",
		Source:       "General Insurance Code of Practice",
		URL:          "https://www.afca.org.au",
		LegalArea:    "insurance",
		Jurisdiction: "",
	},
}

// SeedKnowledgeDocuments embeds and inserts the starter legal corpus.
// Requires a running embedding backend.
func SeedKnowledgeDocuments(db *gorm.DB) {
	baseURL := os.Getenv("OLLAMA_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}
	embedModel := os.Getenv("OLLAMA_EMBEDDING_MODEL")
	if embedModel == "" {
		embedModel = "nomic-embed-text"
	}
	provider := embedding.NewOllamaProvider(baseURL, embedModel)

	for _, doc := range seedDocuments {
		var existing model.KnowledgeDocument
		if err := db.Where("title = ?", doc.Title).First(&existing).Error; err == nil {
			color.Yellow("Document '%s' already exists, skipping...", doc.Title)
			continue
		}

		res, err := provider.Generate(doc.Title+"\n\n"+doc.Content, "RETRIEVAL_DOCUMENT")
		if err != nil {
			color.Red("Error embedding document '%s': %v", doc.Title, err)
			continue
		}

		row := model.KnowledgeDocument{
			Title:        doc.Title,
			Content:      doc.Content,
			Source:       doc.Source,
			URL:          doc.URL,
			LegalArea:    doc.LegalArea,
			Jurisdiction: doc.Jurisdiction,
			Embedding:    pgvector.NewVector(res.Embedding.Values),
		}
		if err := db.Create(&row).Error; err != nil {
			color.Red("Error creating document '%s': %v", doc.Title, err)
		} else {
			color.Green("Created document: %s (%s)", doc.Title, doc.LegalArea)
		}
	}
}
