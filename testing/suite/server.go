package suite

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const (
	headerAuthorization = "authorization"
	contextUserID       = "user_id"
	tokenTTL            = 24 * time.Hour
)

var errInvalidToken = errors.New("invalid token")

type account struct {
	id       int64
	password string
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type cellAction struct {
	Row    int    `json:"row"`
	Col    int    `json:"col"`
	Status string `json:"status"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Server is an in-memory stand-in for the Minesweeper API.
type Server struct {
	logger    *slog.Logger
	secretKey []byte
	now       func() time.Time

	mu       sync.Mutex
	accounts map[string]account
	games    map[int64]*minefield
	nextID   int64
	requests []string
}

func NewServer(logger *slog.Logger, secretKey string) *Server {
	return &Server{
		logger:    logger.With("component", "fake-server"),
		secretKey: []byte(secretKey),
		now:       time.Now,
		accounts:  map[string]account{},
		games:     map[int64]*minefield{},
		nextID:    1,
	}
}

// AddAccount registers a user able to log in.
func (that *Server) AddAccount(username, password string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.accounts[username] = account{id: int64(len(that.accounts) + 1), password: password}
}

// Requests returns "METHOD path" for every request received so far.
func (that *Server) Requests() []string {
	that.mu.Lock()
	defer that.mu.Unlock()

	return append([]string(nil), that.requests...)
}

func (that *Server) Handler() http.Handler {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(that.recordRequest)
	e.POST("/login", that.login)

	games := e.Group("/games", that.authenticate)
	games.GET("", that.listGames)
	games.POST("", that.createGame)
	games.GET("/:id", that.getGame)
	games.PUT("/:id/board", that.applyAction)

	return e
}

func (that *Server) recordRequest(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		that.mu.Lock()
		that.requests = append(that.requests, ctx.Request().Method+" "+ctx.Request().URL.Path)
		that.mu.Unlock()

		return next(ctx)
	}
}

func (that *Server) authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		userID, err := that.parseToken(ctx.Request().Header.Get(headerAuthorization))
		if err != nil {
			that.logger.Debug("rejected token", "error", err)
			return ctx.JSON(http.StatusUnauthorized, errorResponse{Error: "authentication required"})
		}

		ctx.Set(contextUserID, userID)

		return next(ctx)
	}
}

func (that *Server) login(ctx echo.Context) error {
	var creds credentials
	if err := ctx.Bind(&creds); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "invalid JSON format"})
	}

	that.mu.Lock()
	acc, ok := that.accounts[creds.Username]
	that.mu.Unlock()

	if !ok || acc.password != creds.Password {
		return ctx.JSON(http.StatusUnauthorized, errorResponse{Error: "invalid credentials"})
	}

	token, err := that.generateToken(acc.id)
	if err != nil {
		that.logger.Error("failed to generate token", "error", err)
		return ctx.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}

	return ctx.JSON(http.StatusOK, map[string]string{"token": token})
}

func (that *Server) listGames(ctx echo.Context) error {
	userID := ctx.Get(contextUserID).(int64)

	that.mu.Lock()
	ids := make([]int64, 0, len(that.games))
	for id, field := range that.games {
		if field.owner == userID {
			ids = append(ids, id)
		}
	}
	that.mu.Unlock()

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ctx.JSON(http.StatusOK, ids)
}

func (that *Server) createGame(ctx echo.Context) error {
	userID := ctx.Get(contextUserID).(int64)

	size := make([]int, 0, 3)
	for _, name := range []string{"rows", "cols", "mines"} {
		n, err := strconv.Atoi(ctx.QueryParam(name))
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "validation failed: " + name})
		}
		size = append(size, n)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	field, err := newMinefield(that.nextID, userID, size[0], size[1], size[2], that.now())
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	that.games[field.id] = field
	that.nextID++

	return ctx.JSON(http.StatusOK, field.state())
}

func (that *Server) getGame(ctx echo.Context) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	field, ok := that.ownedGame(ctx)
	if !ok {
		return ctx.JSON(http.StatusNotFound, errorResponse{Error: "resource not found"})
	}

	return ctx.JSON(http.StatusOK, field.state())
}

func (that *Server) applyAction(ctx echo.Context) error {
	var action cellAction
	if err := ctx.Bind(&action); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "invalid JSON format"})
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	field, ok := that.ownedGame(ctx)
	if !ok {
		return ctx.JSON(http.StatusNotFound, errorResponse{Error: "resource not found"})
	}

	if err := field.apply(action.Row, action.Col, action.Status, that.now()); err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, ErrGameDecided) {
			status = http.StatusConflict
		}
		return ctx.JSON(status, errorResponse{Error: err.Error()})
	}

	return ctx.JSON(http.StatusOK, field.state())
}

// ownedGame must be called with the mutex held.
func (that *Server) ownedGame(ctx echo.Context) (*minefield, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return nil, false
	}

	field, ok := that.games[id]
	if !ok || field.owner != ctx.Get(contextUserID).(int64) {
		return nil, false
	}

	return field, true
}

func (that *Server) generateToken(userID int64) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		ExpiresAt: jwt.NewNumericDate(that.now().Add(tokenTTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(that.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

func (that *Server) parseToken(tokenString string) (int64, error) {
	var claims jwt.RegisteredClaims

	_, err := jwt.ParseWithClaims(tokenString, &claims, func(*jwt.Token) (any, error) {
		return that.secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", errInvalidToken, err)
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: bad subject", errInvalidToken)
	}

	return userID, nil
}
