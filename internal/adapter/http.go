package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-task-tamer/internal/config"
	"github.com/MKhiriev/go-task-tamer/internal/logger"
	"github.com/MKhiriev/go-task-tamer/internal/utils"
	"github.com/MKhiriev/go-task-tamer/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient
	token  string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates cfg.ServerAddress and restores cfg.Token, so a
// saved profile is usable without logging in again.
//
// Returns an error if cfg.ServerAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(cfg config.ClientConfig, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid server address: %w", err)
	}

	adapter := &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}
	adapter.SetToken(cfg.Token)

	return adapter, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken stores token (whitespace-trimmed) for the Authorization header of
// subsequent requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	return h.token
}

// Register POSTs to /api/auth/register and keeps the bearer token from the
// Authorization response header.
func (h *httpServerAdapter) Register(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	return h.authenticate(ctx, "/api/auth/register", request)
}

// Login POSTs to /api/auth/login and keeps the bearer token from the
// Authorization response header.
func (h *httpServerAdapter) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	return h.authenticate(ctx, "/api/auth/login", request)
}

func (h *httpServerAdapter) authenticate(ctx context.Context, path string, body any) (models.User, error) {
	var result models.UserResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&result).
		Post(path)
	if err != nil {
		return models.User{}, fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("%s parse bearer token: %w", path, err)
	}

	h.SetToken(token)
	h.logger.Debug().Str("user_id", result.User.ID).Msg("authenticated")

	return result.User, nil
}

func (h *httpServerAdapter) Me(ctx context.Context) (models.User, error) {
	var result models.UserResponse
	if err := h.get(ctx, "/api/auth/me", nil, &result); err != nil {
		return models.User{}, err
	}
	return result.User, nil
}

func (h *httpServerAdapter) StartSession(ctx context.Context, taskName string) (models.WorkSession, error) {
	var result models.SessionResponse
	err := h.post(ctx, "/api/sessions", models.StartSessionRequest{TaskName: taskName}, &result)
	return sessionOf(result, err)
}

func (h *httpServerAdapter) PauseSession(ctx context.Context, sessionID string) (models.WorkSession, error) {
	return h.transition(ctx, sessionID, "pause")
}

func (h *httpServerAdapter) ResumeSession(ctx context.Context, sessionID string) (models.WorkSession, error) {
	return h.transition(ctx, sessionID, "resume")
}

func (h *httpServerAdapter) CompleteSession(ctx context.Context, sessionID string) (models.WorkSession, error) {
	return h.transition(ctx, sessionID, "complete")
}

func (h *httpServerAdapter) transition(ctx context.Context, sessionID, action string) (models.WorkSession, error) {
	var result models.SessionResponse
	path := "/api/sessions/" + url.PathEscape(sessionID) + "/" + action
	err := h.post(ctx, path, nil, &result)
	return sessionOf(result, err)
}

func (h *httpServerAdapter) ActiveSession(ctx context.Context) (*models.WorkSession, error) {
	var result models.SessionResponse
	if err := h.get(ctx, "/api/sessions/active", nil, &result); err != nil {
		return nil, err
	}
	return result.Session, nil
}

func (h *httpServerAdapter) CurrentSession(ctx context.Context) (*models.WorkSession, error) {
	var result models.SessionResponse
	if err := h.get(ctx, "/api/sessions/current", nil, &result); err != nil {
		return nil, err
	}
	return result.Session, nil
}

func (h *httpServerAdapter) TodaysSessions(ctx context.Context) ([]models.WorkSession, error) {
	var result models.SessionsResponse
	if err := h.get(ctx, "/api/sessions/today", nil, &result); err != nil {
		return nil, err
	}
	return result.Sessions, nil
}

func (h *httpServerAdapter) ListSessions(ctx context.Context, dateRange *models.DateRange) ([]models.WorkSession, error) {
	var result models.SessionsResponse
	if err := h.get(ctx, "/api/sessions", dateRangeQuery(dateRange), &result); err != nil {
		return nil, err
	}
	return result.Sessions, nil
}

func (h *httpServerAdapter) Journal(ctx context.Context, dateRange *models.DateRange) ([]models.JournalDay, error) {
	var result models.JournalResponse
	if err := h.get(ctx, "/api/sessions/journal", dateRangeQuery(dateRange), &result); err != nil {
		return nil, err
	}
	return result.Days, nil
}

func (h *httpServerAdapter) UpsertEarnings(ctx context.Context, request models.EarningsRequest) (models.MonthlyEarnings, error) {
	var result models.EarningsResponse
	if err := h.post(ctx, "/api/earnings", request, &result); err != nil {
		return models.MonthlyEarnings{}, err
	}
	return result.Earnings, nil
}

func (h *httpServerAdapter) ListEarnings(ctx context.Context) ([]models.MonthlyEarnings, error) {
	var result models.EarningsListResponse
	if err := h.get(ctx, "/api/earnings", nil, &result); err != nil {
		return nil, err
	}
	return result.Earnings, nil
}

func (h *httpServerAdapter) Metrics(ctx context.Context) (models.Metrics, error) {
	var result models.MetricsResponse
	if err := h.get(ctx, "/api/analytics/metrics", nil, &result); err != nil {
		return models.Metrics{}, err
	}
	return result.Metrics, nil
}

func (h *httpServerAdapter) Charts(ctx context.Context, months int) (models.Charts, error) {
	var query map[string]string
	if months != 0 {
		query = map[string]string{"months": strconv.Itoa(months)}
	}

	var result models.Charts
	if err := h.get(ctx, "/api/analytics/charts", query, &result); err != nil {
		return models.Charts{}, err
	}
	return result, nil
}

// Version returns the plain-text body of GET /api/version.
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) get(ctx context.Context, path string, query map[string]string, result any) error {
	resp, err := h.authedRequest(ctx).
		SetQueryParams(query).
		SetResult(result).
		Get(path)
	if err != nil {
		return fmt.Errorf("GET %s request: %w", path, err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) post(ctx context.Context, path string, body, result any) error {
	req := h.authedRequest(ctx).SetResult(result)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := req.Post(path)
	if err != nil {
		return fmt.Errorf("POST %s request: %w", path, err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func sessionOf(result models.SessionResponse, err error) (models.WorkSession, error) {
	if err != nil {
		return models.WorkSession{}, err
	}
	if result.Session == nil {
		return models.WorkSession{}, fmt.Errorf("empty session in response")
	}
	return *result.Session, nil
}

func dateRangeQuery(dateRange *models.DateRange) map[string]string {
	if dateRange == nil {
		return nil
	}
	return map[string]string{
		"start_date": dateRange.Start.Format(time.RFC3339Nano),
		"end_date":   dateRange.End.Format(time.RFC3339Nano),
	}
}
