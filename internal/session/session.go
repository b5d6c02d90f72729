package session

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/rocketscienceinc/minesweeper-client/internal/apperror"
	"github.com/rocketscienceinc/minesweeper-client/internal/entity"
	"github.com/rocketscienceinc/minesweeper-client/internal/transport/rest"
)

const (
	pathLogin = "/login"
	pathGames = "/games"
)

type transport interface {
	Do(ctx context.Context, req *rest.Request) (*rest.Response, error)
}

// Session owns the authentication token and attaches it to every game request.
type Session struct {
	logger    *slog.Logger
	transport transport

	token string
}

func New(logger *slog.Logger, transport transport) *Session {
	return &Session{
		logger:    logger.With("component", "session"),
		transport: transport,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type actionRequest struct {
	Row    int    `json:"row"`
	Col    int    `json:"col"`
	Status string `json:"status"`
}

// Login - exchanges credentials for a token. On failure any previously held token is kept.
func (that *Session) Login(ctx context.Context, username, password string) bool {
	log := that.logger.With("method", "Login", "username", username)

	body, err := json.Marshal(loginRequest{Username: username, Password: password})
	if err != nil {
		log.Error("failed to marshal login request", "error", err)
		return false
	}

	resp, err := that.transport.Do(ctx, &rest.Request{
		Method: http.MethodPost,
		Path:   pathLogin,
		Body:   body,
	})
	if err != nil {
		log.Warn("login request failed", "error", err)
		return false
	}

	if !resp.IsSuccess() {
		log.Warn("login rejected", "status", resp.StatusCode)
		return false
	}

	var out loginResponse
	if err = json.Unmarshal(resp.Body, &out); err != nil {
		log.Warn("failed to decode login response", "error", err)
		return false
	}

	if out.Token == "" {
		log.Warn("login response has no token")
		return false
	}

	that.token = out.Token

	if exp, ok := that.TokenExpiry(); ok {
		log.Debug("logged in", "token_expires_at", exp.Format(time.RFC3339))
	} else {
		log.Debug("logged in")
	}

	return true
}

func (that *Session) IsAuthenticated() bool {
	return that.token != ""
}

// TokenExpiry returns the exp claim when the token is a JWT. The signature is not checked.
func (that *Session) TokenExpiry() (time.Time, bool) {
	if that.token == "" {
		return time.Time{}, false
	}

	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(that.token, &claims); err != nil {
		return time.Time{}, false
	}

	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}

	return claims.ExpiresAt.Time, true
}

func (that *Session) ListGames(ctx context.Context) ([]int64, error) {
	var ids []int64
	if err := that.fetch(ctx, &rest.Request{Method: http.MethodGet, Path: pathGames}, &ids); err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}

	return ids, nil
}

// CreateGame - creation parameters travel in the query string, the request has no body.
func (that *Session) CreateGame(ctx context.Context, rows, cols, mines int) (*entity.GameState, error) {
	req := &rest.Request{
		Method: http.MethodPost,
		Path:   pathGames,
		Query: url.Values{
			"rows":  []string{strconv.Itoa(rows)},
			"cols":  []string{strconv.Itoa(cols)},
			"mines": []string{strconv.Itoa(mines)},
		},
	}

	game, err := that.fetchGame(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	return game, nil
}

func (that *Session) FetchGame(ctx context.Context, gameID int64) (*entity.GameState, error) {
	req := &rest.Request{
		Method: http.MethodGet,
		Path:   gamePath(gameID),
	}

	game, err := that.fetchGame(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch game %d: %w", gameID, err)
	}

	return game, nil
}

// ApplyAction - reports whether the server accepted the action. Other 4xx answers are refusals,
// 401 and 5xx are request failures. The response body is ignored; callers fetch the game again to observe the effect.
func (that *Session) ApplyAction(ctx context.Context, gameID int64, row, col int, action entity.Action) (bool, error) {
	if !that.IsAuthenticated() {
		return false, apperror.ErrNotAuthenticated
	}

	tag, err := action.WireTag()
	if err != nil {
		return false, fmt.Errorf("failed to encode action: %w", err)
	}

	body, err := json.Marshal(actionRequest{Row: row, Col: col, Status: tag})
	if err != nil {
		return false, fmt.Errorf("failed to marshal action: %w", err)
	}

	resp, err := that.transport.Do(ctx, &rest.Request{
		Method: http.MethodPut,
		Path:   gamePath(gameID) + "/board",
		Header: that.authHeader(),
		Body:   body,
	})
	if err != nil {
		return false, fmt.Errorf("%w: %s on game %d: %w", apperror.ErrRequestFailed, action, gameID, err)
	}

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode >= http.StatusInternalServerError {
		return false, fmt.Errorf("%w: %s on game %d returned status %d",
			apperror.ErrRequestFailed, action, gameID, resp.StatusCode)
	}

	if !resp.IsSuccess() {
		that.logger.Info("action rejected",
			"game_id", gameID, "row", row, "col", col, "action", action.String(), "status", resp.StatusCode)
		return false, nil
	}

	return true, nil
}

// fetch - sends an authenticated request and decodes a successful response into out.
func (that *Session) fetch(ctx context.Context, req *rest.Request, out any) error {
	if !that.IsAuthenticated() {
		return apperror.ErrNotAuthenticated
	}

	req.Header = that.authHeader()

	resp, err := that.transport.Do(ctx, req)
	if err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrRequestFailed, err)
	}

	if !resp.IsSuccess() {
		return fmt.Errorf("%w: %s %s returned status %d", apperror.ErrRequestFailed, req.Method, req.Path, resp.StatusCode)
	}

	if err = json.Unmarshal(resp.Body, out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %w", apperror.ErrRequestFailed, err)
	}

	return nil
}

// fetchGame - like fetch, but a snapshot that fails validation is a request failure too.
func (that *Session) fetchGame(ctx context.Context, req *rest.Request) (*entity.GameState, error) {
	var game entity.GameState
	if err := that.fetch(ctx, req, &game); err != nil {
		return nil, err
	}

	if err := game.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrRequestFailed, err)
	}

	return &game, nil
}

func (that *Session) authHeader() http.Header {
	header := http.Header{}
	header.Set(rest.HeaderAuthorization, that.token)
	return header
}

func gamePath(gameID int64) string {
	return pathGames + "/" + strconv.FormatInt(gameID, 10)
}
