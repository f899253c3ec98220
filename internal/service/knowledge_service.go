package service

import (
	"context"
	"fmt"
	"log"

	"legal-assist-be/internal/repository/unitofwork"
	"legal-assist-be/pkg/agent/chat"
	"legal-assist-be/pkg/embedding"
)

// minSimilarity filters out passages that matched only loosely. Weak
// matches hurt grounding more than no matches.
const minSimilarity = 0.3

type IKnowledgeService interface {
	chat.KnowledgeSearcher
}

type knowledgeService struct {
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.EmbeddingProvider
}

func NewKnowledgeService(
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.EmbeddingProvider,
) IKnowledgeService {
	return &knowledgeService{
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
	}
}

// Search embeds the query and runs cosine search over the legal
// knowledge corpus, scoped to the user's jurisdiction plus national
// documents.
func (ks *knowledgeService) Search(ctx context.Context, query, jurisdiction string, limit int) ([]chat.Snippet, error) {
	res, err := ks.embeddingProvider.Generate(query, "RETRIEVAL_QUERY")
	if err != nil {
		log.Printf("[KNOWLEDGE] Embedding failed, falling back to lexical search: %v", err)
		return ks.searchLexical(ctx, query, jurisdiction, limit)
	}

	uow := ks.uowFactory.NewUnitOfWork(ctx)
	scored, err := uow.KnowledgeRepository().SearchSimilar(ctx, res.Embedding.Values, jurisdiction, limit)
	if err != nil {
		return nil, fmt.Errorf("knowledge search failed: %w", err)
	}

	snippets := make([]chat.Snippet, 0, len(scored))
	for _, sd := range scored {
		if sd.Similarity < minSimilarity {
			continue
		}
		snippets = append(snippets, chat.Snippet{
			Title:   sd.Document.Title,
			Content: sd.Document.Content,
			Source:  sd.Document.Source,
			URL:     sd.Document.URL,
		})
	}

	log.Printf("[KNOWLEDGE] query_len=%d jurisdiction=%s matched=%d kept=%d",
		len(query), jurisdiction, len(scored), len(snippets))
	return snippets, nil
}

func (ks *knowledgeService) searchLexical(ctx context.Context, query, jurisdiction string, limit int) ([]chat.Snippet, error) {
	uow := ks.uowFactory.NewUnitOfWork(ctx)
	docs, err := uow.KnowledgeRepository().SearchLexical(ctx, query, jurisdiction, limit)
	if err != nil {
		return nil, fmt.Errorf("lexical knowledge search failed: %w", err)
	}

	snippets := make([]chat.Snippet, len(docs))
	for i, d := range docs {
		snippets[i] = chat.Snippet{
			Title:   d.Title,
			Content: d.Content,
			Source:  d.Source,
			URL:     d.URL,
		}
	}

	log.Printf("[KNOWLEDGE] Lexical fallback: query_len=%d matched=%d", len(query), len(snippets))
	return snippets, nil
}
