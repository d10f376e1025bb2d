package entity

import "time"

// DailyBar は1取引日分の集計値です。
// データソースは日付ごとに高々1本、時系列順で返すことを保証します。
type DailyBar struct {
	Date       time.Time // UTCの日付（時刻部分は0）
	Average    float64   // 平均約定価格
	Highest    float64   // 高値
	Lowest     float64   // 安値
	Volume     int64     // 出来高
	OrderCount int64     // 約定注文数（表示用）
}
