package googlecalendar

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	calendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/tfdeleon/bdnetworking/internal/domain"
)

// Logger is the logging interface the client depends on.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Config carries the OAuth client settings and the offline token set.
// TokensJSON is the serialized oauth2 token obtained from the consent
// flow; it usually arrives through an environment variable.
type Config struct {
	CalendarID   string
	ClientID     string
	ClientSecret string
	RedirectURL  string
	TokensJSON   string
	Timeout      time.Duration
}

// Client talks to the external calendar store. The store is addressed
// by two operations only: list reservations in a window and insert one.
type Client struct {
	svc        *calendar.Service
	calendarID string
	loc        *time.Location
	timeout    time.Duration
	log        Logger
}

// NewClient builds the calendar client, failing fast when credentials
// are absent or unparseable rather than deferring the failure to the
// first request.
func NewClient(ctx context.Context, cfg Config, loc *time.Location, log Logger) (*Client, error) {
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return nil, fmt.Errorf("%w: client_id/client_secret are not set", ErrMissingCredentials)
	}
	if cfg.TokensJSON == "" {
		return nil, fmt.Errorf("%w: tokens_json is not set", ErrMissingCredentials)
	}

	var token oauth2.Token
	if err := json.Unmarshal([]byte(cfg.TokensJSON), &token); err != nil {
		return nil, fmt.Errorf("%w: parse tokens_json: %v", ErrInvalidCredentials, err)
	}

	oauthCfg := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.RedirectURL,
		Scopes:       []string{calendar.CalendarEventsScope},
		Endpoint:     google.Endpoint,
	}

	svc, err := calendar.NewService(ctx, option.WithTokenSource(oauthCfg.TokenSource(ctx, &token)))
	if err != nil {
		return nil, fmt.Errorf("%w: create service: %v", ErrUnavailable, err)
	}

	log.Info("Google Calendar client initialized (calendar_id=%s)", cfg.CalendarID)

	return &Client{
		svc:        svc,
		calendarID: cfg.CalendarID,
		loc:        loc,
		timeout:    cfg.Timeout,
		log:        log,
	}, nil
}

// ListReservations returns the reservations whose interval intersects
// [timeMin, timeMax), ordered by start time.
func (c *Client) ListReservations(ctx context.Context, timeMin, timeMax time.Time) ([]domain.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	events, err := c.svc.Events.List(c.calendarID).
		TimeMin(timeMin.Format(time.RFC3339)).
		TimeMax(timeMax.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("%w: list events: %v", ErrUnavailable, err)
	}

	reservations := make([]domain.Reservation, 0, len(events.Items))
	for _, item := range events.Items {
		res, err := c.toReservation(item)
		if err != nil {
			c.log.Warn("Skipping unparseable calendar event id=%s: %v", item.Id, err)
			continue
		}
		reservations = append(reservations, res)
	}

	return reservations, nil
}

// InsertReservation writes one new reservation to the calendar and
// returns it with the store-assigned event id.
func (c *Client) InsertReservation(ctx context.Context, res domain.Reservation) (domain.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	event := &calendar.Event{
		Summary:     res.Summary,
		Description: res.Description,
		ColorId:     "11",
		Start: &calendar.EventDateTime{
			DateTime: res.Start.Format(time.RFC3339),
			TimeZone: c.loc.String(),
		},
		End: &calendar.EventDateTime{
			DateTime: res.End.Format(time.RFC3339),
			TimeZone: c.loc.String(),
		},
		Reminders: &calendar.EventReminders{
			UseDefault: false,
			Overrides: []*calendar.EventReminder{
				{Method: "email", Minutes: 10},
				{Method: "popup", Minutes: 10},
			},
			ForceSendFields: []string{"UseDefault"},
		},
	}

	inserted, err := c.svc.Events.Insert(c.calendarID, event).Context(ctx).Do()
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("%w: insert event: %v", ErrUnavailable, err)
	}

	res.EventID = inserted.Id
	return res, nil
}

// toReservation projects a calendar event onto the domain reservation.
// All-day events block the whole calendar day.
func (c *Client) toReservation(item *calendar.Event) (domain.Reservation, error) {
	res := domain.Reservation{
		EventID: item.Id,
		Summary: item.Summary,
	}

	if item.Start == nil || item.End == nil {
		return domain.Reservation{}, fmt.Errorf("%w: event without start/end", ErrInvalidResponse)
	}

	if item.Start.DateTime == "" && item.Start.Date != "" {
		day, err := time.ParseInLocation(domain.DateFormat, item.Start.Date, c.loc)
		if err != nil {
			return domain.Reservation{}, fmt.Errorf("%w: parse all-day start: %v", ErrInvalidResponse, err)
		}
		res.Start = day
		res.End = day.AddDate(0, 0, 1)
		return res, nil
	}

	start, err := time.Parse(time.RFC3339, item.Start.DateTime)
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("%w: parse start: %v", ErrInvalidResponse, err)
	}
	end, err := time.Parse(time.RFC3339, item.End.DateTime)
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("%w: parse end: %v", ErrInvalidResponse, err)
	}

	res.Start = start.In(c.loc)
	res.End = end.In(c.loc)
	return res, nil
}
