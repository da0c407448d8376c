package zoho

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"bitbucket.org/mmdatafocus/spaces_backend/models"
)

// Client reads the invoice ledger from Zoho Books. Credentials and the
// organization id come from env; validation lists every missing key in one
// error before any request is made.
type Client struct {
	baseURL   string
	authToken string
	orgId     string
	http      *http.Client
	limiter   <-chan time.Time
}

func NewClient() (*Client, error) {
	baseURL := strings.TrimSpace(os.Getenv("ZOHO_API_BASE_URL"))
	if baseURL == "" {
		baseURL = "https://www.zohoapis.in/books/v3"
	}
	authToken := strings.TrimSpace(os.Getenv("ZOHO_AUTH_TOKEN"))
	orgId := strings.TrimSpace(os.Getenv("ZOHO_ORG_ID"))

	var missing []string
	if authToken == "" {
		missing = append(missing, "ZOHO_AUTH_TOKEN")
	}
	if orgId == "" {
		missing = append(missing, "ZOHO_ORG_ID")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("zoho config incomplete, missing: %s", strings.Join(missing, ", "))
	}

	rateLimitPerMin := int64(30)
	if v := strings.TrimSpace(os.Getenv("ZOHO_RATE_LIMIT_PER_MIN")); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			rateLimitPerMin = n
		}
	}
	interval := time.Minute / time.Duration(rateLimitPerMin)

	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		authToken: authToken,
		orgId:     orgId,
		http:      &http.Client{Timeout: 30 * time.Second},
		limiter:   time.Tick(interval),
	}, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	select {
	case <-c.limiter:
	case <-ctx.Done():
		return ctx.Err()
	}

	query.Set("organization_id", c.orgId)
	endpoint := c.baseURL + path + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Zoho-oauthtoken "+c.authToken)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("zoho GET %s: status %d: %s", path, resp.StatusCode, truncate(string(body), 300))
	}
	return json.Unmarshal(body, out)
}

// ListInvoices pages through /invoices for the date window and maps each
// record onto the internal snapshot shape.
func (c *Client) ListInvoices(ctx context.Context, from, to time.Time) ([]models.ZohoInvoice, error) {
	var invoices []models.ZohoInvoice
	page := 1
	for {
		query := url.Values{}
		query.Set("date_start", from.Format("2006-01-02"))
		query.Set("date_end", to.Format("2006-01-02"))
		query.Set("page", strconv.Itoa(page))
		query.Set("per_page", "200")

		var listResp invoiceListResponse
		if err := c.get(ctx, "/invoices", query, &listResp); err != nil {
			return nil, err
		}
		if listResp.Code != 0 {
			return nil, errors.New("zoho list invoices: " + listResp.Message)
		}

		for i := range listResp.Invoices {
			invoice, err := listResp.Invoices[i].toModel()
			if err != nil {
				return nil, err
			}
			invoices = append(invoices, invoice)
		}

		if !listResp.PageContext.HasMorePage {
			return invoices, nil
		}
		page++
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
