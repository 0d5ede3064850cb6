package spotmarket

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"powerwidget/internal/feature/prices/adapters/spotmarket/dto"
	"powerwidget/internal/feature/prices/domain/entity"
	"powerwidget/internal/feature/prices/usecase"
)

// priceQuery は直近の時間別スポット価格を取得するGraphQLクエリです。
const priceQuery = `query ($hours: Int!) { marketPrices(hours: $hours) { from till price } }`

// Client はスポット市場GraphQL APIから価格データを取得するPriceSource実装です。
type Client struct {
	cfg    Config
	client *http.Client
}

// ClientがPriceSourceを実装していることをコンパイル時に検証します。
var _ usecase.PriceSource = (*Client)(nil)

// NewClient は指定された設定とHTTPクライアントでClientの新しいインスタンスを生成します。
func NewClient(cfg Config, client *http.Client) *Client {
	return &Client{cfg: cfg, client: client}
}

// FetchPrices はGraphQLエンドポイントに1回のPOSTを行い、
// entity.PriceSampleのスライスとして返します。リトライはしません。
func (c *Client) FetchPrices(ctx context.Context) ([]entity.PriceSample, error) {
	// query/variables のエンベロープを組み立てる
	reqBody, err := json.Marshal(map[string]any{
		"query": priceQuery,
		"variables": map[string]any{
			"hours": c.cfg.LookaheadHours,
		},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(reqBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.APIToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIToken)
	}

	res, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("spotmarket http %d", res.StatusCode)
	}

	var body dto.PriceResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, err
	}
	if len(body.Errors) > 0 {
		return nil, fmt.Errorf("spotmarket: %s", body.Errors[0].Message)
	}

	samples := make([]entity.PriceSample, 0, len(body.Data.MarketPrices))
	for _, v := range body.Data.MarketPrices {
		// 開始時刻をパース
		from, err := time.Parse(time.RFC3339, v.From)
		if err != nil {
			return nil, fmt.Errorf("parse from %q: %w", v.From, err)
		}
		// 終了時刻をパース
		till, err := time.Parse(time.RFC3339, v.Till)
		if err != nil {
			return nil, fmt.Errorf("parse till %q: %w", v.Till, err)
		}

		samples = append(samples, entity.PriceSample{
			From:  from,
			Till:  till,
			Price: v.Price,
		})
	}
	return samples, nil
}
