package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"trivia-game-backend/internal/models"
	"trivia-game-backend/internal/store/memory"
)

func newTestService() *GameService {
	return NewGameService(memory.New())
}

func twoQuestions() []models.Question {
	return []models.Question{
		{
			Text:          "What is the capital of France?",
			Options:       []string{"Paris", "London", "Berlin", "Madrid"},
			CorrectAnswer: 0,
			Points:        10,
		},
		{
			Text:          "What is 2+2?",
			Options:       []string{"3", "4", "5", "6"},
			CorrectAnswer: 1,
			Points:        10,
		},
	}
}

func TestCreateGame(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	game, err := svc.CreateGame(ctx, "host-1", twoQuestions(), 0)
	if err != nil {
		t.Fatalf("CreateGame failed: %v", err)
	}
	if len(game.Code) != 6 {
		t.Fatalf("expected 6-char code, got %q", game.Code)
	}
	if game.Code != strings.ToUpper(game.Code) {
		t.Fatalf("code should be uppercase, got %q", game.Code)
	}
	if game.Status != models.GameStatusWaiting {
		t.Fatalf("expected status waiting, got %s", game.Status)
	}
	if game.TimePerQuestion != 30 {
		t.Fatalf("expected default time per question 30, got %d", game.TimePerQuestion)
	}
	if len(game.Players) != 0 {
		t.Fatalf("new game should have no players, got %d", len(game.Players))
	}
	if game.StartedAt != nil || game.EndedAt != nil {
		t.Fatal("timestamps should be unset on creation")
	}
}

func TestCreateGameValidation(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	base := twoQuestions()
	tooMany := make([]models.Question, 21)
	for i := range tooMany {
		tooMany[i] = base[0]
	}
	noText := twoQuestions()
	noText[1].Text = "  "
	threeOptions := twoQuestions()
	threeOptions[0].Options = threeOptions[0].Options[:3]
	emptyOption := twoQuestions()
	emptyOption[0].Options[2] = ""
	badCorrect := twoQuestions()
	badCorrect[0].CorrectAnswer = 4
	negativeCorrect := twoQuestions()
	negativeCorrect[1].CorrectAnswer = -1

	tests := []struct {
		name      string
		questions []models.Question
	}{
		{"no questions", nil},
		{"too many questions", tooMany},
		{"empty question text", noText},
		{"wrong option count", threeOptions},
		{"empty option", emptyOption},
		{"correct answer out of range", badCorrect},
		{"negative correct answer", negativeCorrect},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateGame(ctx, "host-1", tt.questions, 30)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestCreateGameDefaultsPoints(t *testing.T) {
	svc := newTestService()
	qs := twoQuestions()
	qs[0].Points = 0

	game, err := svc.CreateGame(context.Background(), "host-1", qs, 30)
	if err != nil {
		t.Fatalf("CreateGame failed: %v", err)
	}
	if game.Questions[0].Points != 10 {
		t.Fatalf("expected default points 10, got %d", game.Questions[0].Points)
	}
}

func TestJoinGame(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	game, _ := svc.CreateGame(ctx, "host-1", twoQuestions(), 30)

	joined, err := svc.JoinGame(ctx, game.Code, "player-1", "alice")
	if err != nil {
		t.Fatalf("JoinGame failed: %v", err)
	}
	if len(joined.Players) != 1 {
		t.Fatalf("expected 1 player, got %d", len(joined.Players))
	}
	p := joined.Player("player-1")
	if p == nil || p.Username != "alice" || p.Score != 0 || len(p.Answers) != 0 {
		t.Fatalf("unexpected player entry: %+v", p)
	}
}

func TestJoinGameIdempotent(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	game, _ := svc.CreateGame(ctx, "host-1", twoQuestions(), 30)
	if _, err := svc.JoinGame(ctx, game.Code, "player-1", "alice"); err != nil {
		t.Fatalf("first join failed: %v", err)
	}
	joined, err := svc.JoinGame(ctx, game.Code, "player-1", "alice")
	if err != nil {
		t.Fatalf("second join should be a no-op success: %v", err)
	}
	if len(joined.Players) != 1 {
		t.Fatalf("expected 1 roster entry after duplicate join, got %d", len(joined.Players))
	}
}

func TestJoinGameLowercaseCode(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	game, _ := svc.CreateGame(ctx, "host-1", twoQuestions(), 30)
	if _, err := svc.JoinGame(ctx, strings.ToLower(game.Code), "player-1", "alice"); err != nil {
		t.Fatalf("join with lowercase code should normalize: %v", err)
	}
}

func TestJoinGameErrors(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	if _, err := svc.JoinGame(ctx, "NOSUCH", "player-1", "alice"); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("expected ErrGameNotFound, got %v", err)
	}

	game := startedGame(t, svc, "host-1", "player-1", "player-2")
	if _, err := svc.JoinGame(ctx, game.Code, "player-3", "carol"); !errors.Is(err, ErrGameNotWaiting) {
		t.Fatalf("expected ErrGameNotWaiting for late join, got %v", err)
	}

	// retried join from an existing player still succeeds after start
	if _, err := svc.JoinGame(ctx, game.Code, "player-1", "alice"); err != nil {
		t.Fatalf("rejoin after start should be a no-op success: %v", err)
	}
}

func TestStartGame(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	game, _ := svc.CreateGame(ctx, "host-1", twoQuestions(), 30)
	svc.JoinGame(ctx, game.Code, "player-1", "alice")

	// fewer than 2 players
	if _, err := svc.StartGame(ctx, game.Code, "host-1"); !errors.Is(err, ErrNotEnoughPlayers) {
		t.Fatalf("expected ErrNotEnoughPlayers, got %v", err)
	}

	svc.JoinGame(ctx, game.Code, "player-2", "bob")

	// non-host cannot start
	if _, err := svc.StartGame(ctx, game.Code, "player-1"); !errors.Is(err, ErrNotHost) {
		t.Fatalf("expected ErrNotHost, got %v", err)
	}
	g, _ := svc.GetGame(ctx, game.Code)
	if g.Status != models.GameStatusWaiting {
		t.Fatalf("failed start must leave the game waiting, got %s", g.Status)
	}

	started, err := svc.StartGame(ctx, game.Code, "host-1")
	if err != nil {
		t.Fatalf("StartGame failed: %v", err)
	}
	if started.Status != models.GameStatusInProgress {
		t.Fatalf("expected in-progress, got %s", started.Status)
	}
	if started.CurrentQuestion != 0 {
		t.Fatalf("expected current question 0, got %d", started.CurrentQuestion)
	}
	if started.StartedAt == nil {
		t.Fatal("StartedAt should be stamped on start")
	}

	// starting twice is illegal
	if _, err := svc.StartGame(ctx, game.Code, "host-1"); !errors.Is(err, ErrGameNotWaiting) {
		t.Fatalf("expected ErrGameNotWaiting on double start, got %v", err)
	}
}

// startedGame creates a 2-question game, joins the given players, and starts it.
func startedGame(t *testing.T, svc *GameService, hostID string, playerIDs ...string) *models.Game {
	t.Helper()
	ctx := context.Background()
	game, err := svc.CreateGame(ctx, hostID, twoQuestions(), 30)
	if err != nil {
		t.Fatalf("CreateGame failed: %v", err)
	}
	for _, id := range playerIDs {
		if _, err := svc.JoinGame(ctx, game.Code, id, id); err != nil {
			t.Fatalf("JoinGame(%s) failed: %v", id, err)
		}
	}
	started, err := svc.StartGame(ctx, game.Code, hostID)
	if err != nil {
		t.Fatalf("StartGame failed: %v", err)
	}
	return started
}

func TestSubmitAnswerScoringAndAdvancement(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	game := startedGame(t, svc, "host-1", "player-1", "player-2")

	// player-1 answers question 0 correctly
	res, err := svc.SubmitAnswer(ctx, game.Code, "player-1", 0, 0)
	if err != nil {
		t.Fatalf("SubmitAnswer failed: %v", err)
	}
	if !res.IsCorrect || res.Points != 10 {
		t.Fatalf("expected correct answer worth 10, got %+v", res)
	}

	// not everyone has answered yet
	g, _ := svc.GetGame(ctx, game.Code)
	if g.CurrentQuestion != 0 {
		t.Fatalf("game advanced before all players answered: index %d", g.CurrentQuestion)
	}

	// player-2 answers question 0 incorrectly; their submission completes
	// the roster and advances the game
	res, err = svc.SubmitAnswer(ctx, game.Code, "player-2", 0, 3)
	if err != nil {
		t.Fatalf("SubmitAnswer failed: %v", err)
	}
	if res.IsCorrect || res.Points != 0 {
		t.Fatalf("expected incorrect answer worth 0, got %+v", res)
	}

	g, _ = svc.GetGame(ctx, game.Code)
	if g.CurrentQuestion != 1 {
		t.Fatalf("expected advancement to question 1, got %d", g.CurrentQuestion)
	}
	if g.Player("player-1").Score != 10 {
		t.Fatalf("expected player-1 score 10, got %d", g.Player("player-1").Score)
	}
	if g.Player("player-2").Score != 0 {
		t.Fatalf("expected player-2 score 0, got %d", g.Player("player-2").Score)
	}

	// both answer the last question; game completes
	if _, err := svc.SubmitAnswer(ctx, game.Code, "player-1", 1, 1); err != nil {
		t.Fatalf("SubmitAnswer failed: %v", err)
	}
	if _, err := svc.SubmitAnswer(ctx, game.Code, "player-2", 1, 1); err != nil {
		t.Fatalf("SubmitAnswer failed: %v", err)
	}

	g, _ = svc.GetGame(ctx, game.Code)
	if g.Status != models.GameStatusCompleted {
		t.Fatalf("expected completed, got %s", g.Status)
	}
	if g.EndedAt == nil {
		t.Fatal("EndedAt should be stamped on completion")
	}
	if g.Player("player-1").Score != 20 || g.Player("player-2").Score != 10 {
		t.Fatalf("unexpected final scores: %d, %d",
			g.Player("player-1").Score, g.Player("player-2").Score)
	}

	// completed game accepts nothing further
	if _, err := svc.SubmitAnswer(ctx, game.Code, "player-1", 1, 0); !errors.Is(err, ErrGameNotInProgress) {
		t.Fatalf("expected ErrGameNotInProgress after completion, got %v", err)
	}
}

func TestSubmitAnswerErrors(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	// before start
	game, _ := svc.CreateGame(ctx, "host-1", twoQuestions(), 30)
	svc.JoinGame(ctx, game.Code, "player-1", "alice")
	if _, err := svc.SubmitAnswer(ctx, game.Code, "player-1", 0, 0); !errors.Is(err, ErrGameNotInProgress) {
		t.Fatalf("expected ErrGameNotInProgress before start, got %v", err)
	}

	game = startedGame(t, svc, "host-2", "player-1", "player-2")

	if _, err := svc.SubmitAnswer(ctx, "NOSUCH", "player-1", 0, 0); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("expected ErrGameNotFound, got %v", err)
	}
	if _, err := svc.SubmitAnswer(ctx, game.Code, "stranger", 0, 0); !errors.Is(err, ErrPlayerNotFound) {
		t.Fatalf("expected ErrPlayerNotFound, got %v", err)
	}
	if _, err := svc.SubmitAnswer(ctx, game.Code, "player-1", 1, 0); !errors.Is(err, ErrStaleQuestion) {
		t.Fatalf("expected ErrStaleQuestion for future index, got %v", err)
	}
	if _, err := svc.SubmitAnswer(ctx, game.Code, "player-1", 0, 7); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for out-of-range option, got %v", err)
	}

	if _, err := svc.SubmitAnswer(ctx, game.Code, "player-1", 0, 0); err != nil {
		t.Fatalf("SubmitAnswer failed: %v", err)
	}
	if _, err := svc.SubmitAnswer(ctx, game.Code, "player-1", 0, 1); !errors.Is(err, ErrAlreadyAnswered) {
		t.Fatalf("expected ErrAlreadyAnswered, got %v", err)
	}

	// advance past question 0, then answer it again: stale
	if _, err := svc.SubmitAnswer(ctx, game.Code, "player-2", 0, 0); err != nil {
		t.Fatalf("SubmitAnswer failed: %v", err)
	}
	if _, err := svc.SubmitAnswer(ctx, game.Code, "player-2", 0, 1); !errors.Is(err, ErrStaleQuestion) {
		t.Fatalf("expected ErrStaleQuestion for passed index, got %v", err)
	}
}

func TestConcurrentSubmitAdvancesExactlyOnce(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	const playerCount = 8
	game, err := svc.CreateGame(ctx, "host-1", twoQuestions(), 30)
	if err != nil {
		t.Fatalf("CreateGame failed: %v", err)
	}
	players := make([]string, playerCount)
	for i := range players {
		players[i] = "player-" + string(rune('a'+i))
		if _, err := svc.JoinGame(ctx, game.Code, players[i], players[i]); err != nil {
			t.Fatalf("JoinGame failed: %v", err)
		}
	}
	if _, err := svc.StartGame(ctx, game.Code, "host-1"); err != nil {
		t.Fatalf("StartGame failed: %v", err)
	}

	var wg sync.WaitGroup
	errs := make([]error, playerCount)
	for i, id := range players {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			_, errs[i] = svc.SubmitAnswer(ctx, game.Code, id, 0, 0)
		}(i, id)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Fatalf("player %s submit failed: %v", players[i], err)
		}
	}

	g, _ := svc.GetGame(ctx, game.Code)
	if g.CurrentQuestion != 1 {
		t.Fatalf("expected exactly one advancement to index 1, got %d", g.CurrentQuestion)
	}
	if g.Status != models.GameStatusInProgress {
		t.Fatalf("expected in-progress after first question, got %s", g.Status)
	}
	for _, id := range players {
		p := g.Player(id)
		if len(p.Answers) != 1 {
			t.Fatalf("player %s has %d answers for one question", id, len(p.Answers))
		}
		if p.Answers[0].QuestionIndex != 0 {
			t.Fatalf("player %s answer recorded for index %d", id, p.Answers[0].QuestionIndex)
		}
	}
}

func TestConcurrentDoubleSubmitRecordsOneAnswer(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	game := startedGame(t, svc, "host-1", "player-1", "player-2")

	const attempts = 10
	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.SubmitAnswer(ctx, game.Code, "player-1", 0, 0)
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, ErrAlreadyAnswered):
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if succeeded != 1 {
		t.Fatalf("expected exactly one submission to win, got %d", succeeded)
	}

	g, _ := svc.GetGame(ctx, game.Code)
	p := g.Player("player-1")
	if len(p.Answers) != 1 {
		t.Fatalf("expected one recorded answer, got %d", len(p.Answers))
	}
	if p.Score != 10 {
		t.Fatalf("score must count the question exactly once, got %d", p.Score)
	}
}

func TestCompletionOnSingleQuestionGame(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	game, _ := svc.CreateGame(ctx, "host-1", twoQuestions()[:1], 30)
	svc.JoinGame(ctx, game.Code, "player-1", "alice")
	svc.JoinGame(ctx, game.Code, "player-2", "bob")
	svc.StartGame(ctx, game.Code, "host-1")

	svc.SubmitAnswer(ctx, game.Code, "player-1", 0, 0)
	svc.SubmitAnswer(ctx, game.Code, "player-2", 0, 2)

	g, _ := svc.GetGame(ctx, game.Code)
	if g.Status != models.GameStatusCompleted {
		t.Fatalf("expected completed, got %s", g.Status)
	}
	if g.CurrentQuestion != 0 {
		t.Fatalf("index must not move past the last question, got %d", g.CurrentQuestion)
	}
}

func TestListGames(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	hosted, _ := svc.CreateGame(ctx, "user-1", twoQuestions(), 30)
	other, _ := svc.CreateGame(ctx, "user-2", twoQuestions(), 30)
	svc.JoinGame(ctx, other.Code, "user-1", "alice")
	svc.CreateGame(ctx, "user-3", twoQuestions(), 30)

	games, err := svc.ListGames(ctx, "user-1")
	if err != nil {
		t.Fatalf("ListGames failed: %v", err)
	}
	if len(games) != 2 {
		t.Fatalf("expected 2 games for user-1, got %d", len(games))
	}
	codes := map[string]bool{games[0].Code: true, games[1].Code: true}
	if !codes[hosted.Code] || !codes[other.Code] {
		t.Fatalf("unexpected games listed: %v", codes)
	}
}

func TestLeaderboard(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	game := startedGame(t, svc, "host-1", "player-1", "player-2")

	svc.SubmitAnswer(ctx, game.Code, "player-1", 0, 3) // wrong
	svc.SubmitAnswer(ctx, game.Code, "player-2", 0, 0) // right

	entries, err := svc.Leaderboard(ctx, game.Code)
	if err != nil {
		t.Fatalf("Leaderboard failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].UserID != "player-2" || entries[0].Score != 10 || entries[0].Position != 1 {
		t.Fatalf("unexpected leader: %+v", entries[0])
	}
	if entries[1].UserID != "player-1" || entries[1].Score != 0 || entries[1].Position != 2 {
		t.Fatalf("unexpected runner-up: %+v", entries[1])
	}
}
