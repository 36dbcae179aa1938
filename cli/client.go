package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// ApiClient talks to the traiteur HTTP API.
type ApiClient struct {
	httpClient *http.Client
	BaseURL    string
	Token      string
}

// NewApiClient reads the server address and optional bearer token from
// the environment.
func NewApiClient() *ApiClient {
	baseURL := os.Getenv("TRAITEUR_API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	return &ApiClient{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		BaseURL:    baseURL,
		Token:      os.Getenv("TRAITEUR_API_TOKEN"),
	}
}

// Ping reports whether the server answers on /health.
func (c *ApiClient) Ping() bool {
	resp, err := c.httpClient.Get(c.BaseURL + "/health")
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// Request is the menu request sent to the server.
type Request struct {
	ID                    string   `json:"id"`
	EventType             string   `json:"event_type"`
	Season                string   `json:"season"`
	Guests                int      `json:"num_guests"`
	PriceMin              float64  `json:"price_min"`
	PriceMax              float64  `json:"price_max"`
	WantsWine             bool     `json:"wants_wine"`
	PreferredStyle        string   `json:"preferred_style,omitempty"`
	CulturalPreference    string   `json:"cultural_preference,omitempty"`
	RequiredDiets         []string `json:"required_diets,omitempty"`
	RestrictedIngredients []string `json:"restricted_ingredients,omitempty"`
}

// Dish is one course of a proposed menu.
type Dish struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Calories int     `json:"calories"`
}

// Beverage accompanies a menu.
type Beverage struct {
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Alcoholic bool    `json:"alcoholic"`
}

// Menu is a proposed three course menu with beverage.
type Menu struct {
	ID            string   `json:"id"`
	Starter       Dish     `json:"starter"`
	Main          Dish     `json:"main"`
	Dessert       Dish     `json:"dessert"`
	Beverage      Beverage `json:"beverage"`
	TotalPrice    float64  `json:"total_price"`
	TotalCalories int      `json:"total_calories"`
	DominantStyle string   `json:"dominant_style,omitempty"`
	CulturalTheme string   `json:"cultural_theme,omitempty"`
}

// Proposal is one validated menu with its score and context.
type Proposal struct {
	Menu         Menu     `json:"menu"`
	Score        float64  `json:"score"`
	Status       string   `json:"status"`
	Explanations []string `json:"explanations,omitempty"`
	Notes        []string `json:"adaptation_notes,omitempty"`
	Similarity   float64  `json:"similarity"`
	PriceBucket  string   `json:"price_bucket"`
	SourceCaseID string   `json:"source_case_id,omitempty"`
	Generated    bool     `json:"generated"`
}

// ProposeResult is the response for a proposal request.
type ProposeResult struct {
	Proposals []Proposal `json:"proposals"`
	Warnings  []string   `json:"warnings,omitempty"`
}

// Feedback rates a served menu on a 1 to 5 scale.
type Feedback struct {
	Score        float64 `json:"score"`
	PriceScore   float64 `json:"price_score,omitempty"`
	FlavorScore  float64 `json:"flavor_score,omitempty"`
	DietaryScore float64 `json:"dietary_score,omitempty"`
	Success      bool    `json:"success"`
	Comment      string  `json:"comment,omitempty"`
}

// FeedbackResult reports what the server did with one rating.
type FeedbackResult struct {
	Retention struct {
		Action string `json:"action"`
		Reason string `json:"reason"`
	} `json:"retention"`
	WeightDeltas map[string]float64 `json:"weight_deltas"`
}

// Case is a stored menu episode.
type Case struct {
	ID            string  `json:"id"`
	Request       Request `json:"request"`
	Menu          Menu    `json:"menu"`
	FeedbackScore float64 `json:"feedback_score"`
	Success       bool    `json:"success"`
	Negative      bool    `json:"negative"`
	UsageCount    int     `json:"usage_count"`
}

// CaseList is the response for the case listing.
type CaseList struct {
	Cases []Case `json:"cases"`
	Count int    `json:"count"`
}

// Propose asks the server for menu proposals.
func (c *ApiClient) Propose(req Request) (*ProposeResult, error) {
	var out ProposeResult
	if err := c.do(http.MethodPost, "/api/v1/proposals", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SubmitFeedback rates a served menu.
func (c *ApiClient) SubmitFeedback(req Request, menu Menu, fb Feedback) (*FeedbackResult, error) {
	body := struct {
		Request  Request  `json:"request"`
		Menu     Menu     `json:"menu"`
		Feedback Feedback `json:"feedback"`
	}{req, menu, fb}

	var out FeedbackResult
	if err := c.do(http.MethodPost, "/api/v1/feedback", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Cases lists the stored case pool.
func (c *ApiClient) Cases() (*CaseList, error) {
	var out CaseList
	if err := c.do(http.MethodGet, "/api/v1/cases", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Weights returns the current similarity weights.
func (c *ApiClient) Weights() (map[string]float64, error) {
	var out map[string]float64
	if err := c.do(http.MethodGet, "/api/v1/weights", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Stats returns case pool and server statistics.
func (c *ApiClient) Stats() (map[string]interface{}, error) {
	var out map[string]interface{}
	if err := c.do(http.MethodGet, "/api/v1/stats", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ApiClient) do(method, path string, body, out interface{}) error {
	var buf io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		buf = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, c.BaseURL+path, buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		var apiErr struct {
			Error   string   `json:"error"`
			Reasons []string `json:"reasons"`
		}
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Error != "" {
			if len(apiErr.Reasons) > 0 {
				return fmt.Errorf("%s: %s", apiErr.Error, apiErr.Reasons[0])
			}
			return fmt.Errorf("%s", apiErr.Error)
		}
		return fmt.Errorf("server returned %d", resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(raw, out)
}
