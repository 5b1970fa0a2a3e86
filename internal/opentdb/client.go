package opentdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

const (
	defaultBaseURL = "https://opentdb.com"
	defaultAmount  = 10
)

var (
	// ErrUnavailable indicates the API could not be reached at all.
	ErrUnavailable = errors.New("opentdb unavailable")
	// ErrBadResponse indicates the API answered with something we cannot use.
	ErrBadResponse = errors.New("opentdb bad response")
	// ErrNoResults indicates the API has fewer questions than requested.
	ErrNoResults = errors.New("opentdb has no results for this request")
)

// RawQuestion mirrors the OpenTriviaDB question payload. All text fields
// are HTML-entity-encoded as delivered by the API.
type RawQuestion struct {
	Type             string   `json:"type"`
	Difficulty       string   `json:"difficulty"`
	Category         string   `json:"category"`
	Question         string   `json:"question"`
	CorrectAnswer    string   `json:"correct_answer"`
	IncorrectAnswers []string `json:"incorrect_answers"`
}

// Request describes a question fetch. Zero values mean "any" and omit
// the corresponding query parameter.
type Request struct {
	Amount     int
	Category   int
	Difficulty string
	Type       string
}

type apiResponse struct {
	ResponseCode int           `json:"response_code"`
	Results      []RawQuestion `json:"results"`
}

type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient(httpClient *http.Client) *Client {
	return NewClientWithBaseURL(httpClient, defaultBaseURL)
}

func NewClientWithBaseURL(httpClient *http.Client, baseURL string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{httpClient: httpClient, baseURL: baseURL}
}

func (c *Client) FetchQuestions(ctx context.Context, request Request) ([]RawQuestion, error) {
	if request.Amount <= 0 {
		request.Amount = defaultAmount
	}

	query := url.Values{}
	query.Set("amount", strconv.Itoa(request.Amount))
	if request.Category > 0 {
		query.Set("category", strconv.Itoa(request.Category))
	}
	if request.Difficulty != "" {
		query.Set("difficulty", request.Difficulty)
	}
	if request.Type != "" {
		query.Set("type", request.Type)
	}

	var payload apiResponse
	if err := c.getJSON(ctx, "/api.php", query, &payload); err != nil {
		return nil, err
	}

	switch payload.ResponseCode {
	case 0:
		return payload.Results, nil
	case 1:
		return nil, ErrNoResults
	default:
		return nil, fmt.Errorf("%w: response_code=%d", ErrBadResponse, payload.ResponseCode)
	}
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", ErrBadResponse, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", ErrBadResponse, err)
	}
	return nil
}
