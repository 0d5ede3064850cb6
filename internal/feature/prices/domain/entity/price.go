package entity

import "time"

// PriceSample は1時間分の電力スポット価格です。
type PriceSample struct {
	From  time.Time `json:"from"`
	Till  time.Time `json:"till"`
	Price float64   `json:"price"`
}

// CheapestWindow は価格列の中で合計が最小となる連続区間を指します。
// StartIndex + Length <= len(series) が常に成り立ちます。
type CheapestWindow struct {
	StartIndex  int
	Length      int
	HoursOffset int // 区間開始までの時間（時間単位、0は「今」）
}

// Summary は1回の集計結果です。Window は該当区間が存在しない場合 nil になります。
type Summary struct {
	Series   []PriceSample
	Min      float64
	Max      float64
	Baseline float64
	Window   *CheapestWindow
}
