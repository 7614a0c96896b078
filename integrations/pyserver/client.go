package pyserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"jiwoo-back/dto"
	"jiwoo-back/metrics"
	"jiwoo-back/vo"

	"github.com/gofiber/fiber/v2"
	"github.com/tidwall/gjson"
)

// Client talks to the Python analysis server that embeds company descriptions and
// returns the closest registered companies.
type Client struct {
	url     string
	timeout time.Duration
}

func NewClient(url string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{url: url, timeout: timeout}
}

// SearchSimilarCompanies posts the company info and returns the ranked hits in server order.
func (c *Client) SearchSimilarCompanies(ctx context.Context, info dto.BusinessInfoDTO) (hits []vo.ResponsePythonServerVO, err error) {
	timeout := c.timeout
	if deadline, ok := ctx.Deadline(); ok {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return nil, ctx.Err()
		}
		if remaining < timeout {
			timeout = remaining
		}
	}

	start := time.Now()
	defer func() { metrics.ObserveUpstream("python", start, err) }()

	agent := fiber.Post(c.url).JSON(info).Timeout(timeout)
	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return nil, fmt.Errorf("python server request: %w", errors.Join(errs...))
	}
	if code < 200 || code >= 300 {
		return nil, fmt.Errorf("python server returned status %d", code)
	}

	return parseHits(body)
}

// parseHits accepts both the camelCase fields of the response model and the
// snake_case ones some server versions emit.
func parseHits(body []byte) ([]vo.ResponsePythonServerVO, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("python server returned invalid JSON")
	}
	root := gjson.ParseBytes(body)
	if !root.IsArray() {
		return nil, fmt.Errorf("python server returned %s, expected an array", root.Type)
	}

	items := root.Array()
	hits := make([]vo.ResponsePythonServerVO, 0, len(items))
	for _, item := range items {
		hit := vo.ResponsePythonServerVO{
			BusinessName:    firstOf(item, "businessName", "company_name").String(),
			SimilarityScore: firstOf(item, "similarityScore", "similarity_score").Float(),
		}
		if raw := item.Get("info"); raw.Exists() && raw.IsObject() {
			if err := json.Unmarshal([]byte(raw.Raw), &hit.Info); err != nil {
				return nil, fmt.Errorf("decode company info: %w", err)
			}
		}
		hits = append(hits, hit)
	}
	return hits, nil
}

func firstOf(item gjson.Result, paths ...string) gjson.Result {
	for _, p := range paths {
		if r := item.Get(p); r.Exists() {
			return r
		}
	}
	return gjson.Result{}
}
