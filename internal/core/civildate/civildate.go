package civildate

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Layout は暦日の正規文字列表現 (YYYY-MM-DD) です。
const Layout = "2006-01-02"

// ErrUnparseable は日付として解釈できない値に対して返却されます。
var ErrUnparseable = errors.New("unparseable date")

// Date は時刻成分を持たない暦日を表します。ゼロ値は「日付なし」を意味します。
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// New は指定された年月日から Date を生成します。
func New(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// FromTime は時刻値を UTC の暦日へ切り詰めます。
func FromTime(t time.Time) Date {
	u := t.UTC()
	return Date{Year: u.Year(), Month: u.Month(), Day: u.Day()}
}

// Parse は YYYY-MM-DD 形式の文字列を Date として解釈します。
func Parse(value string) (Date, error) {
	t, err := time.Parse(Layout, strings.TrimSpace(value))
	if err != nil {
		return Date{}, fmt.Errorf("%q: %w", value, ErrUnparseable)
	}
	return FromTime(t), nil
}

// Normalize は永続化層に混在し得る日付表現を単一の Date へ正規化します。
// Date / time.Time / 文字列 (YYYY-MM-DD または ISO-8601 日時) を受け付け、
// 解釈できない値には ErrUnparseable を返します。
func Normalize(value any) (Date, error) {
	switch v := value.(type) {
	case Date:
		return v, nil
	case *Date:
		if v == nil {
			return Date{}, ErrUnparseable
		}
		return *v, nil
	case time.Time:
		return FromTime(v), nil
	case *time.Time:
		if v == nil {
			return Date{}, ErrUnparseable
		}
		return FromTime(*v), nil
	case string:
		return normalizeString(v)
	case []byte:
		return normalizeString(string(v))
	default:
		return Date{}, fmt.Errorf("%T: %w", value, ErrUnparseable)
	}
}

var stringLayouts = []string{
	Layout,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

func normalizeString(value string) (Date, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Date{}, ErrUnparseable
	}
	for _, layout := range stringLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return FromTime(t), nil
		}
	}
	return Date{}, fmt.Errorf("%q: %w", value, ErrUnparseable)
}

// IsZero は日付が設定されていないかどうかを返します。
func (d Date) IsZero() bool {
	return d == Date{}
}

// Time は UTC の午前 0 時として time.Time に変換します。
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// String は YYYY-MM-DD 形式の文字列を返します。
func (d Date) String() string {
	return d.Time().Format(Layout)
}

// Before は d が other より過去かどうかを返します。
func (d Date) Before(other Date) bool {
	return d.Time().Before(other.Time())
}

// AddDays は日数を加算した Date を返します。負数も指定できます。
func (d Date) AddDays(days int) Date {
	return FromTime(d.Time().AddDate(0, 0, days))
}

// DaysSince は other から d までの経過日数を返します。
func (d Date) DaysSince(other Date) int {
	return int(d.Time().Sub(other.Time()) / (24 * time.Hour))
}

// MarshalJSON は YYYY-MM-DD 形式の JSON 文字列として出力します。
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON は YYYY-MM-DD 形式の JSON 文字列を解釈します。
func (d *Date) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	parsed, err := Parse(raw)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
