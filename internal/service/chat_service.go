package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"legal-assist-be/internal/dto"
	"legal-assist-be/internal/entity"
	"legal-assist-be/internal/repository/specification"
	"legal-assist-be/internal/repository/unitofwork"
	"legal-assist-be/pkg/agent/router"
	"legal-assist-be/pkg/agent/state"
	"legal-assist-be/pkg/agent/turnctx"
	"legal-assist-be/pkg/events"
	"legal-assist-be/pkg/store"

	"github.com/google/uuid"
)

const maxTitleLength = 60

type IChatService interface {
	Turn(ctx context.Context, userId uuid.UUID, req *dto.ChatTurnRequest) (*dto.ChatTurnResponse, error)
	CreateSession(ctx context.Context, userId uuid.UUID) (*dto.ChatSessionResponse, error)
	ListSessions(ctx context.Context, userId uuid.UUID) ([]dto.ChatSessionResponse, error)
	GetSession(ctx context.Context, userId, sessionId uuid.UUID) (*dto.ChatHistoryResponse, error)
	DeleteSession(ctx context.Context, userId, sessionId uuid.UUID) error
}

// chatService owns the turn cycle: load session state, run the router
// pipeline, persist the result, emit events. Turns for the same session
// are serialized so the read-process-write cycle never interleaves.
type chatService struct {
	uowFactory  unitofwork.RepositoryFactory
	checkpoints store.CheckpointStore
	router      *router.Router
	publisher   IEventPublisherService
	turnTimeout time.Duration

	sessionLocks sync.Map // session id -> *sync.Mutex
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	checkpoints store.CheckpointStore,
	rt *router.Router,
	publisher IEventPublisherService,
	turnTimeout time.Duration,
) IChatService {
	return &chatService{
		uowFactory:  uowFactory,
		checkpoints: checkpoints,
		router:      rt,
		publisher:   publisher,
		turnTimeout: turnTimeout,
	}
}

func (cs *chatService) Turn(ctx context.Context, userId uuid.UUID, req *dto.ChatTurnRequest) (*dto.ChatTurnResponse, error) {
	payload := turnctx.Payload{
		SessionID: req.SessionId,
		Messages:  toStateMessages(req.Messages),
		Context:   req.Context,
	}
	tc := turnctx.Extract(payload)

	mu := cs.sessionLock(tc.SessionID)
	mu.Lock()
	defer mu.Unlock()

	s, err := cs.loadSession(ctx, tc.SessionID)
	if err != nil {
		return nil, err
	}
	s.UserID = userId.String()

	persistFrom := len(s.Messages)
	if tc.Query != "" {
		s.Messages = append(s.Messages, state.TurnMessage{Role: state.RoleUser, Content: tc.Query})
	}
	replyFrom := len(s.Messages)
	roundsBefore := s.BriefQuestionsAsked

	runCtx, cancel := context.WithTimeout(ctx, cs.turnTimeout)
	defer cancel()
	result := cs.router.Run(runCtx, s, tc)

	// Durability is best-effort per turn: the reply is already computed
	// and the in-memory checkpoint keeps the conversation coherent, so
	// storage failures are logged rather than surfaced.
	if err := cs.checkpoints.Put(ctx, s); err != nil {
		log.Printf("[ERROR] Failed to store checkpoint for session %s: %v", s.ID, err)
	}
	cs.persistTurn(ctx, s, persistFrom)
	cs.publishTurnEvents(s, result, roundsBefore)

	return &dto.ChatTurnResponse{
		SessionId:       s.ID,
		Messages:        toDtoMessages(s.Messages[replyFrom:]),
		Mode:            string(s.Mode),
		SafetyResult:    string(s.SafetyResult),
		CrisisResources: s.CrisisResources,
		QuickReplies:    s.QuickReplies,
		SuggestBrief:    s.SuggestBrief,
		SuggestLawyer:   s.SuggestLawyer,
	}, nil
}

func (cs *chatService) sessionLock(sessionID string) *sync.Mutex {
	actual, _ := cs.sessionLocks.LoadOrStore(sessionID, &sync.Mutex{})
	return actual.(*sync.Mutex)
}

// loadSession resolves session state: hot store first, then the
// database snapshot, then a fresh session.
func (cs *chatService) loadSession(ctx context.Context, sessionID string) (*state.Session, error) {
	s, found, err := cs.checkpoints.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("checkpoint lookup failed: %w", err)
	}
	if found {
		return s, nil
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	data, err := uow.SessionCheckpointRepository().FindBySessionId(ctx, sessionID)
	if err != nil {
		log.Printf("[ERROR] Failed to read checkpoint snapshot for session %s: %v", sessionID, err)
	}
	if len(data) > 0 {
		var restored state.Session
		if err := json.Unmarshal(data, &restored); err == nil {
			log.Printf("[INFO] Restored session %s from database snapshot", sessionID)
			return &restored, nil
		}
		log.Printf("[ERROR] Corrupt checkpoint snapshot for session %s, starting fresh", sessionID)
	}

	return state.NewSession(sessionID), nil
}

func (cs *chatService) persistTurn(ctx context.Context, s *state.Session, persistFrom int) {
	sessionId, err := uuid.Parse(s.ID)
	if err != nil {
		log.Printf("[ERROR] Session id %q is not a UUID, skipping persistence", s.ID)
		return
	}
	userId, _ := uuid.Parse(s.UserID)

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		log.Printf("[ERROR] Failed to begin transaction for session %s: %v", s.ID, err)
		return
	}
	defer uow.Rollback()

	existing, err := uow.ChatSessionRepository().FindOne(ctx, specification.ByID{ID: sessionId})
	if err != nil {
		log.Printf("[ERROR] Failed to load session row %s: %v", s.ID, err)
		return
	}
	if existing == nil {
		err = uow.ChatSessionRepository().Create(ctx, &entity.ChatSession{
			Id:           sessionId,
			UserId:       userId,
			Title:        sessionTitle(s),
			Mode:         string(s.Mode),
			LegalTopic:   s.LegalTopic,
			Jurisdiction: s.Jurisdiction,
			CreatedAt:    time.Now(),
		})
	} else {
		existing.Mode = string(s.Mode)
		existing.LegalTopic = s.LegalTopic
		existing.Jurisdiction = s.Jurisdiction
		err = uow.ChatSessionRepository().Update(ctx, existing)
	}
	if err != nil {
		log.Printf("[ERROR] Failed to upsert session row %s: %v", s.ID, err)
		return
	}

	if persistFrom < len(s.Messages) {
		newMessages := s.Messages[persistFrom:]
		rows := make([]*entity.ChatMessage, len(newMessages))
		for i, m := range newMessages {
			rows[i] = &entity.ChatMessage{
				Id:            uuid.New(),
				Content:       m.Content,
				Role:          m.Role,
				ChatSessionId: sessionId,
				CreatedAt:     time.Now(),
			}
		}
		if err := uow.ChatMessageRepository().CreateBulk(ctx, rows); err != nil {
			log.Printf("[ERROR] Failed to persist %d messages for session %s: %v", len(rows), s.ID, err)
			return
		}
	}

	snapshot, err := json.Marshal(s)
	if err != nil {
		log.Printf("[ERROR] Failed to marshal checkpoint for session %s: %v", s.ID, err)
		return
	}
	if err := uow.SessionCheckpointRepository().Upsert(ctx, s.ID, snapshot); err != nil {
		log.Printf("[ERROR] Failed to upsert checkpoint snapshot for session %s: %v", s.ID, err)
		return
	}

	if err := uow.Commit(); err != nil {
		log.Printf("[ERROR] Failed to commit turn for session %s: %v", s.ID, err)
	}
}

func (cs *chatService) publishTurnEvents(s *state.Session, result router.TurnResult, roundsBefore int) {
	cs.publisher.Publish(events.NewTurnCompleted(s.ID, string(result.Terminal)))

	if result.Terminal == router.NodeEscalation {
		cs.publisher.Publish(events.NewCrisisEscalated(s.ID, s.Jurisdiction, len(s.CrisisResources)))
	}
	if result.Terminal == router.NodeBriefGenerate {
		cs.publisher.Publish(events.NewBriefGenerated(s.ID, roundsBefore))
	}
	if result.ClassifierErr != nil {
		cs.publisher.Publish(events.NewSafetyClassifierFailed(s.ID, result.ClassifierErr.Error()))
	}
}

// CreateSession opens an empty session up front. Sessions are also
// created implicitly on the first turn, so this exists for clients
// that want a session id before sending anything.
func (cs *chatService) CreateSession(ctx context.Context, userId uuid.UUID) (*dto.ChatSessionResponse, error) {
	session := &entity.ChatSession{
		Id:        uuid.New(),
		UserId:    userId,
		Title:     "New conversation",
		Mode:      string(state.ModeChat),
		CreatedAt: time.Now(),
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ChatSessionRepository().Create(ctx, session); err != nil {
		return nil, err
	}

	res := toSessionResponse(session)
	return &res, nil
}

func (cs *chatService) ListSessions(ctx context.Context, userId uuid.UUID) ([]dto.ChatSessionResponse, error) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)
	sessions, err := uow.ChatSessionRepository().FindAll(ctx, specification.ByUserID{UserID: userId})
	if err != nil {
		return nil, err
	}

	res := make([]dto.ChatSessionResponse, len(sessions))
	for i, session := range sessions {
		res[i] = toSessionResponse(session)
	}
	return res, nil
}

func (cs *chatService) GetSession(ctx context.Context, userId, sessionId uuid.UUID) (*dto.ChatHistoryResponse, error) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.ChatSessionRepository().FindOne(ctx, specification.ByID{ID: sessionId})
	if err != nil {
		return nil, err
	}
	if session == nil || session.UserId != userId {
		return nil, fmt.Errorf("session not found")
	}

	messages, err := uow.ChatMessageRepository().FindAll(ctx, specification.ByChatSessionID{ChatSessionID: sessionId})
	if err != nil {
		return nil, err
	}
	history := make([]dto.TurnMessage, len(messages))
	for i, m := range messages {
		history[i] = dto.TurnMessage{Role: m.Role, Content: m.Content}
	}

	return &dto.ChatHistoryResponse{
		Session:  toSessionResponse(session),
		Messages: history,
	}, nil
}

func (cs *chatService) DeleteSession(ctx context.Context, userId, sessionId uuid.UUID) error {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.ChatSessionRepository().FindOne(ctx, specification.ByID{ID: sessionId})
	if err != nil {
		return err
	}
	if session == nil || session.UserId != userId {
		return fmt.Errorf("session not found")
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.ChatMessageRepository().DeleteBySessionId(ctx, sessionId); err != nil {
		return err
	}
	if err := uow.SessionCheckpointRepository().Delete(ctx, sessionId.String()); err != nil {
		return err
	}
	if err := uow.ChatSessionRepository().Delete(ctx, sessionId); err != nil {
		return err
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	if err := cs.checkpoints.Delete(ctx, sessionId.String()); err != nil {
		log.Printf("[ERROR] Failed to drop checkpoint for session %s: %v", sessionId, err)
	}
	return nil
}

func sessionTitle(s *state.Session) string {
	title := "New conversation"
	for _, m := range s.Messages {
		if m.Role == state.RoleUser && m.Content != "" {
			title = m.Content
			break
		}
	}
	runes := []rune(title)
	if len(runes) > maxTitleLength {
		title = string(runes[:maxTitleLength]) + "..."
	}
	return title
}

func toStateMessages(messages []dto.TurnMessage) []state.TurnMessage {
	out := make([]state.TurnMessage, len(messages))
	for i, m := range messages {
		out[i] = state.TurnMessage{Role: m.Role, Content: m.Content}
	}
	return out
}

func toDtoMessages(messages []state.TurnMessage) []dto.TurnMessage {
	out := make([]dto.TurnMessage, len(messages))
	for i, m := range messages {
		out[i] = dto.TurnMessage{Role: m.Role, Content: m.Content}
	}
	return out
}

func toSessionResponse(session *entity.ChatSession) dto.ChatSessionResponse {
	return dto.ChatSessionResponse{
		Id:           session.Id,
		Title:        session.Title,
		Mode:         session.Mode,
		LegalTopic:   session.LegalTopic,
		Jurisdiction: session.Jurisdiction,
		CreatedAt:    session.CreatedAt,
	}
}
