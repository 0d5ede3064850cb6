// Package dto はprices featureのHTTPレスポンスDTOを定義します。
package dto

// PriceResponse は1時間分の価格のレスポンスDTOです。
type PriceResponse struct {
	From  string  `json:"from"`  // 開始時刻（RFC 3339）
	Till  string  `json:"till"`  // 終了時刻（RFC 3339）
	Price float64 `json:"price"` // 価格
}

// WindowResponse は最安区間のレスポンスDTOです。
type WindowResponse struct {
	StartIndex  int `json:"start_index"`
	Length      int `json:"length"`
	HoursOffset int `json:"hours_offset"`
}

// SummaryResponse は集計結果のレスポンスDTOです。
// データ不足の場合は Status が "insufficient_data" になり、他のフィールドは省略されます。
type SummaryResponse struct {
	Status   string          `json:"status"`
	Title    string          `json:"title,omitempty"`
	Min      float64         `json:"min"`
	Max      float64         `json:"max"`
	Baseline float64         `json:"baseline"`
	Window   *WindowResponse `json:"window,omitempty"`
	Series   []PriceResponse `json:"series,omitempty"`
}

// ErrorResponse はエラーのレスポンスDTOです。
type ErrorResponse struct {
	Error string `json:"error"`
}
