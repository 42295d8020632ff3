// Package media uploads room images to Cloudinary.
package media

import (
	"context"
	"crypto/sha1"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"booking/utils"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const DefaultBaseURL = "https://api.cloudinary.com"

// File is an in-memory upload with its declared MIME type.
type File struct {
	Name     string
	MimeType string
	Data     []byte
}

type Config struct {
	CloudName string
	APIKey    string
	APISecret string
	BaseURL   string
	Timeout   time.Duration
}

// Client talks to the Cloudinary upload API with signed requests.
type Client struct {
	http   *resty.Client
	cfg    Config
	logger *zap.Logger
	now    func() time.Time
}

type uploadResult struct {
	PublicID  string `json:"public_id"`
	SecureURL string `json:"secure_url"`
	URL       string `json:"url"`
}

type destroyResult struct {
	Result string `json:"result"`
}

type apiError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func NewClient(cfg Config, logger *zap.Logger) (*Client, error) {
	if cfg.CloudName == "" || cfg.APIKey == "" || cfg.APISecret == "" {
		return nil, errors.New("media: cloud name, api key and api secret are required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetPathParam("cloud", cfg.CloudName).
		SetHeader("Accept", "application/json")
	if cfg.Timeout > 0 {
		httpClient.SetTimeout(cfg.Timeout)
	}

	return &Client{
		http:   httpClient,
		cfg:    cfg,
		logger: logger,
		now:    time.Now,
	}, nil
}

// Upload stores f under folder/publicID, overwriting any previous asset,
// and returns its secure URL.
func (c *Client) Upload(ctx context.Context, f File, publicID, folder string) (string, error) {
	params := map[string]string{
		"public_id": publicID,
		"folder":    folder,
		"overwrite": "true",
		"timestamp": c.timestamp(),
	}
	form := c.signed(params)
	form["file"] = utils.DataURL(f.MimeType, f.Data)

	var (
		out  uploadResult
		fail apiError
	)
	res, err := c.http.R().
		SetContext(ctx).
		SetFormData(form).
		SetResult(&out).
		SetError(&fail).
		Post("/v1_1/{cloud}/auto/upload")
	if err != nil {
		return "", fmt.Errorf("cloudinary upload %s: %w", publicID, err)
	}
	if res.IsError() {
		return "", fmt.Errorf("cloudinary upload %s: %s", publicID, errorMessage(res, fail))
	}

	url := out.SecureURL
	if url == "" {
		url = out.URL
	}
	if url == "" {
		return "", fmt.Errorf("cloudinary upload %s: no url in response", publicID)
	}

	c.logger.Debug("media uploaded",
		zap.String("public_id", out.PublicID),
		zap.Int("bytes", len(f.Data)),
	)
	return url, nil
}

// Destroy removes the image asset addressed by the full public id
// (folder included) under the image resource type. A missing asset is
// logged and is not an error.
func (c *Client) Destroy(ctx context.Context, publicID string) error {
	form := c.signed(map[string]string{
		"public_id": publicID,
		"timestamp": c.timestamp(),
	})

	var (
		out  destroyResult
		fail apiError
	)
	res, err := c.http.R().
		SetContext(ctx).
		SetFormData(form).
		SetResult(&out).
		SetError(&fail).
		Post("/v1_1/{cloud}/image/destroy")
	if err != nil {
		return fmt.Errorf("cloudinary destroy %s: %w", publicID, err)
	}
	if res.IsError() {
		return fmt.Errorf("cloudinary destroy %s: %s", publicID, errorMessage(res, fail))
	}
	switch out.Result {
	case "ok":
		return nil
	case "not found":
		c.logger.Warn("media not found on destroy", zap.String("public_id", publicID))
		return nil
	default:
		return fmt.Errorf("cloudinary destroy %s: result %q", publicID, out.Result)
	}
}

func (c *Client) timestamp() string {
	return strconv.FormatInt(c.now().Unix(), 10)
}

// signed returns params plus api_key and signature.
func (c *Client) signed(params map[string]string) map[string]string {
	form := make(map[string]string, len(params)+2)
	for k, v := range params {
		form[k] = v
	}
	form["signature"] = Sign(params, c.cfg.APISecret)
	form["api_key"] = c.cfg.APIKey
	return form
}

// Sign computes the Cloudinary request signature: SHA-1 over the
// alphabetically sorted non-empty params joined as k=v with &, followed
// by the API secret.
func Sign(params map[string]string, secret string) string {
	keys := make([]string, 0, len(params))
	for k, v := range params {
		switch k {
		case "file", "api_key", "resource_type", "cloud_name", "signature":
			continue
		}
		if v == "" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, len(keys))
	for i, k := range keys {
		pairs[i] = k + "=" + params[k]
	}
	sum := sha1.Sum([]byte(strings.Join(pairs, "&") + secret))
	return fmt.Sprintf("%x", sum)
}

func errorMessage(res *resty.Response, fail apiError) string {
	if fail.Error.Message != "" {
		return fail.Error.Message
	}
	if body := strings.TrimSpace(res.String()); body != "" {
		return fmt.Sprintf("%s: %s", res.Status(), body)
	}
	return res.Status()
}
