package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	nethttp "net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	appgames "github.com/preston-bernstein/nhl-shot-chart-service/internal/app/games"
	domaingames "github.com/preston-bernstein/nhl-shot-chart-service/internal/domain/games"
	"github.com/preston-bernstein/nhl-shot-chart-service/internal/http/requestutil"
	"github.com/preston-bernstein/nhl-shot-chart-service/internal/imageenc"
	"github.com/preston-bernstein/nhl-shot-chart-service/internal/logging"
	"github.com/preston-bernstein/nhl-shot-chart-service/internal/providers"
	"github.com/preston-bernstein/nhl-shot-chart-service/internal/shotchart"
)

// AllowedMethods is advertised on every OPTIONS request.
var AllowedMethods = []string{"GET", "POST", "OPTIONS", "HEAD"}

// GameService is what the handlers need from the application layer.
type GameService interface {
	ShotChart(ctx context.Context, source domaingames.Source, gameID, tz string) (appgames.Chart, error)
	FetchRaw(ctx context.Context, source domaingames.Source, gameID string) (providers.RawGame, error)
	PlayTypes(ctx context.Context, source domaingames.Source, gameID string) ([]string, error)
	Schedule(ctx context.Context, teamID, seasonID, tz string) ([]domaingames.ScheduledGame, error)
}

// Config carries the request defaults and file locations used by the handlers.
type Config struct {
	DefaultSource     domaingames.Source
	DefaultGameID     string
	DefaultEdgeGameID string
	DefaultTeamID     string
	DefaultSeasonID   string
	DefaultTimezone   string
	StaticDir         string
	QRDir             string
	PublicBaseURL     string
}

// Handler wires HTTP routes to the game service.
type Handler struct {
	svc    GameService
	cfg    Config
	logger *slog.Logger
	now    func() time.Time
}

// NewHandler constructs a Handler with defaults.
func NewHandler(svc GameService, cfg Config, logger *slog.Logger) *Handler {
	if cfg.DefaultSource == "" {
		cfg.DefaultSource = domaingames.SourceLegacy
	}
	if cfg.DefaultTimezone == "" {
		cfg.DefaultTimezone = "UTC"
	}
	return &Handler{
		svc:    svc,
		cfg:    cfg,
		logger: logger,
		now:    time.Now,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Options advertises the supported methods for any path.
func (h *Handler) Options(w nethttp.ResponseWriter, r *nethttp.Request) {
	w.Header().Set("Allow", strings.Join(AllowedMethods, ", "))
	writeJSON(w, nethttp.StatusOK, map[string][]string{"allowed_methods": AllowedMethods}, h.logger)
}

// Head answers HEAD probes on page routes without doing any work.
func (h *Handler) Head(w nethttp.ResponseWriter, r *nethttp.Request) {
	w.Header().Set("Content-Type", "text/html")
	w.WriteHeader(nethttp.StatusOK)
}

type chartPage struct {
	PageTitle string
	Title     string
	Chart     appgames.Chart
	ImageURL  template.URL
}

type scheduleRow struct {
	domaingames.ScheduledGame
	Link string
}

type schedulePage struct {
	chartPage
	Games  []scheduleRow
	QRCode template.URL
}

// DefaultChart renders the shot chart from the configured default source.
func (h *Handler) DefaultChart(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.renderChart(w, r, h.cfg.DefaultSource, h.defaultGameID(h.cfg.DefaultSource))
}

// EdgeChart renders the shot chart from the Edge API.
func (h *Handler) EdgeChart(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.renderChart(w, r, domaingames.SourceEdge, h.defaultGameID(domaingames.SourceEdge))
}

func (h *Handler) renderChart(w nethttp.ResponseWriter, r *nethttp.Request, source domaingames.Source, fallbackID string) {
	gameID, ok := requestutil.NumericID(r, "gameId", fallbackID)
	if !ok {
		writeErrorPage(w, r, nethttp.StatusBadRequest, fmt.Errorf("invalid gameId %q", gameID), h.logger)
		return
	}
	tz := requestutil.QueryOrDefault(r, "timezone", h.cfg.DefaultTimezone)

	chart, err := h.svc.ShotChart(r.Context(), source, gameID, tz)
	if err != nil {
		writeErrorPage(w, r, nethttp.StatusInternalServerError, err, h.logger)
		return
	}
	writeHTML(w, nethttp.StatusOK, "chart.html", newChartPage(chart), h.logger)
}

// ScheduleChart renders a chart together with the team's schedule and a share QR code.
func (h *Handler) ScheduleChart(w nethttp.ResponseWriter, r *nethttp.Request) {
	logger := loggerFromContext(r, h.logger)
	ids := make(map[string]string, 3)
	for key, fallback := range map[string]string{
		"gameId":   h.cfg.DefaultGameID,
		"teamId":   h.cfg.DefaultTeamID,
		"seasonId": h.cfg.DefaultSeasonID,
	} {
		v, ok := requestutil.NumericID(r, key, fallback)
		if !ok {
			writeErrorPage(w, r, nethttp.StatusBadRequest, fmt.Errorf("invalid %s %q", key, v), h.logger)
			return
		}
		ids[key] = v
	}
	tz := requestutil.QueryOrDefault(r, "timezone", h.cfg.DefaultTimezone)

	chart, err := h.svc.ShotChart(r.Context(), domaingames.SourceLegacy, ids["gameId"], tz)
	if err != nil {
		writeErrorPage(w, r, nethttp.StatusInternalServerError, err, h.logger)
		return
	}
	games, err := h.svc.Schedule(r.Context(), ids["teamId"], ids["seasonId"], tz)
	if err != nil {
		writeErrorPage(w, r, nethttp.StatusInternalServerError, err, h.logger)
		return
	}

	page := schedulePage{chartPage: newChartPage(chart)}
	for _, g := range games {
		q := url.Values{}
		q.Set("gameId", g.GameID)
		q.Set("teamId", ids["teamId"])
		q.Set("seasonId", ids["seasonId"])
		q.Set("timezone", tz)
		page.Games = append(page.Games, scheduleRow{ScheduledGame: g, Link: "/nhl-schedule?" + q.Encode()})
	}
	if qr, err := imageenc.QRCode(h.sharePayload(ids["gameId"])); err == nil {
		if uri, ok := imageenc.ToBase64(qr); ok {
			page.QRCode = template.URL(uri)
		}
	} else {
		logging.Warn(logger, "qr code failed", slog.String(logging.FieldError, err.Error()))
	}
	writeHTML(w, nethttp.StatusOK, "schedule.html", page, h.logger)
}

// LoadGameData returns the three raw Edge documents of a game.
func (h *Handler) LoadGameData(w nethttp.ResponseWriter, r *nethttp.Request) {
	gameID, ok := requestutil.NumericID(r, "gameId", h.cfg.DefaultEdgeGameID)
	if !ok {
		writeError(w, r, nethttp.StatusBadRequest, "invalid gameId", h.logger)
		return
	}
	edge, err := h.fetchEdge(r.Context(), gameID)
	if err != nil {
		writeError(w, r, statusForUpstream(err), err.Error(), h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]json.RawMessage{
		"landing_data":      edge.Landing,
		"boxscore_data":     edge.Boxscore,
		"play_by_play_data": edge.PlayByPlay,
	}, h.logger)
}

type gameDataPage struct {
	PageTitle string
	GameID    string
	Documents []documentView
}

type documentView struct {
	Kind string
	Body string
}

// GameData renders the raw Edge documents as preformatted HTML.
func (h *Handler) GameData(w nethttp.ResponseWriter, r *nethttp.Request) {
	gameID, ok := requestutil.NumericID(r, "gameId", h.cfg.DefaultEdgeGameID)
	if !ok {
		writeErrorPage(w, r, nethttp.StatusBadRequest, fmt.Errorf("invalid gameId %q", gameID), h.logger)
		return
	}
	edge, err := h.fetchEdge(r.Context(), gameID)
	if err != nil {
		writeErrorPage(w, r, nethttp.StatusInternalServerError, err, h.logger)
		return
	}

	page := gameDataPage{PageTitle: "Game " + gameID, GameID: gameID}
	for _, doc := range edge.Documents() {
		var pretty bytes.Buffer
		body := string(doc.Payload)
		if err := json.Indent(&pretty, doc.Payload, "", "  "); err == nil {
			body = pretty.String()
		}
		page.Documents = append(page.Documents, documentView{Kind: doc.Kind, Body: body})
	}
	writeHTML(w, nethttp.StatusOK, "gamedata.html", page, h.logger)
}

// PlayTypes lists the distinct play types of a game as JSON.
func (h *Handler) PlayTypes(w nethttp.ResponseWriter, r *nethttp.Request) {
	source, ok := domaingames.ParseSource(requestutil.QueryOrDefault(r, "source", string(domaingames.SourceEdge)))
	if !ok {
		writeError(w, r, nethttp.StatusBadRequest, "invalid source", h.logger)
		return
	}
	gameID, ok := requestutil.NumericID(r, "gameId", h.defaultGameID(source))
	if !ok {
		writeError(w, r, nethttp.StatusBadRequest, "invalid gameId", h.logger)
		return
	}
	keys, err := h.svc.PlayTypes(r.Context(), source, gameID)
	if err != nil {
		writeError(w, r, statusForUpstream(err), err.Error(), h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]any{
		"gameId":    gameID,
		"source":    source,
		"playTypes": keys,
	}, h.logger)
}

type qrPage struct {
	PageTitle   string
	Payload     string
	QRCode      template.URL
	DownloadURL string
}

// QRCodePage shows the share QR code of a game.
func (h *Handler) QRCodePage(w nethttp.ResponseWriter, r *nethttp.Request) {
	gameID, ok := requestutil.NumericID(r, "gameId", h.cfg.DefaultGameID)
	if !ok {
		writeErrorPage(w, r, nethttp.StatusBadRequest, fmt.Errorf("invalid gameId %q", gameID), h.logger)
		return
	}
	payload := h.sharePayload(gameID)
	img, err := imageenc.QRCode(payload)
	if err != nil {
		writeErrorPage(w, r, nethttp.StatusInternalServerError, err, h.logger)
		return
	}
	uri, ok := imageenc.ToBase64(img)
	if !ok {
		writeErrorPage(w, r, nethttp.StatusInternalServerError, errors.New("encode qr code"), h.logger)
		return
	}
	writeHTML(w, nethttp.StatusOK, "qrcode.html", qrPage{
		PageTitle:   "QR Code",
		Payload:     payload,
		QRCode:      template.URL(uri),
		DownloadURL: "/qrcode/download?gameId=" + url.QueryEscape(gameID),
	}, h.logger)
}

// QRCodeDownload writes the share QR code to the QR directory and streams it as an attachment.
func (h *Handler) QRCodeDownload(w nethttp.ResponseWriter, r *nethttp.Request) {
	gameID, ok := requestutil.NumericID(r, "gameId", h.cfg.DefaultGameID)
	if !ok {
		writeError(w, r, nethttp.StatusBadRequest, "invalid gameId", h.logger)
		return
	}
	name := fmt.Sprintf("qrcode-%s.png", gameID)
	f, err := imageenc.WriteQRFile(h.sharePayload(gameID), filepath.Join(h.qrDir(), name))
	if err != nil {
		logging.Error(loggerFromContext(r, h.logger), "qr code write failed", err, slog.String(logging.FieldGameID, gameID))
		writeError(w, r, nethttp.StatusInternalServerError, "qr code unavailable", h.logger)
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	nethttp.ServeContent(w, r, name, h.now(), f)
}

// StaticFile serves a single file from the static directory.
func (h *Handler) StaticFile(name, contentType string) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		path := filepath.Join(h.cfg.StaticDir, name)
		if _, err := os.Stat(path); err != nil {
			writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
			return
		}
		if contentType != "" {
			w.Header().Set("Content-Type", contentType)
		}
		nethttp.ServeFile(w, r, path)
	}
}

// Static serves everything under the static directory at /static/.
func (h *Handler) Static() nethttp.Handler {
	return nethttp.StripPrefix("/static/", nethttp.FileServer(nethttp.Dir(h.cfg.StaticDir)))
}

// NotFound answers unknown routes with a JSON error.
func (h *Handler) NotFound(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
}

func (h *Handler) fetchEdge(ctx context.Context, gameID string) (providers.EdgeGame, error) {
	raw, err := h.svc.FetchRaw(ctx, domaingames.SourceEdge, gameID)
	if err != nil {
		return providers.EdgeGame{}, err
	}
	edge, ok := raw.(providers.EdgeGame)
	if !ok {
		return providers.EdgeGame{}, fmt.Errorf("game %s has no Edge documents", gameID)
	}
	return edge, nil
}

func (h *Handler) defaultGameID(source domaingames.Source) string {
	if source == domaingames.SourceEdge && h.cfg.DefaultEdgeGameID != "" {
		return h.cfg.DefaultEdgeGameID
	}
	return h.cfg.DefaultGameID
}

// sharePayload is the chart URL when a public base URL is known, else a plain label.
func (h *Handler) sharePayload(gameID string) string {
	if base := strings.TrimSuffix(h.cfg.PublicBaseURL, "/"); base != "" {
		return base + "/nhl-shot-chart?gameId=" + url.QueryEscape(gameID)
	}
	return "NHL Game ID: " + gameID
}

func (h *Handler) qrDir() string {
	if h.cfg.QRDir != "" {
		return h.cfg.QRDir
	}
	return os.TempDir()
}

func newChartPage(chart appgames.Chart) chartPage {
	title := shotchart.Title(chart.Record)
	return chartPage{
		PageTitle: strings.ReplaceAll(title, "\n", " - "),
		Title:     title,
		Chart:     chart,
		ImageURL:  template.URL(chart.Image),
	}
}

func statusForUpstream(err error) int {
	if errors.Is(err, providers.ErrProviderUnavailable) {
		return nethttp.StatusServiceUnavailable
	}
	return nethttp.StatusBadGateway
}
