package analytics

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/ogurasousui/hrms-lite/internal/core/attendance"
	"github.com/ogurasousui/hrms-lite/internal/core/civildate"
)

// trendWindowDays はトレンド集計の対象日数です。当日を含みます。
const trendWindowDays = 30

// Clock は現在時刻を提供します。
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

// AttendanceSource は集計対象となる勤怠レコードのスナップショットを提供します。
type AttendanceSource interface {
	List(ctx context.Context) ([]*attendance.Attendance, error)
	Count(ctx context.Context) (int64, error)
}

// EmployeeCounter は従業員総数を提供します。
type EmployeeCounter interface {
	Count(ctx context.Context) (int64, error)
}

// DashboardSummary は当日の出欠状況のスナップショットです。
type DashboardSummary struct {
	TotalEmployees         int64
	TotalAttendanceRecords int64
	PresentToday           int
	AbsentToday            int
}

// PerformanceSummary は全期間の出勤率サマリです。
type PerformanceSummary struct {
	AttendancePercentage float64
	TotalPresent         int
	TotalAbsent          int
	EmployeeCount        int64
	TotalRecords         int
}

// TrendPoint は 1 日分のトレンドエントリです。
type TrendPoint struct {
	Date           civildate.Date
	Present        int
	Absent         int
	Total          int
	AttendanceRate float64
}

// Service は勤怠の読み取り専用集計をまとめます。書き込みは行いません。
type Service struct {
	records   AttendanceSource
	employees EmployeeCounter
	clock     Clock
}

// UseCase は集計ユースケースの公開インターフェースです。
type UseCase interface {
	Dashboard(ctx context.Context) (*DashboardSummary, error)
	Performance(ctx context.Context) (*PerformanceSummary, error)
	Trend(ctx context.Context) ([]TrendPoint, error)
}

// NewService は Service を生成します。
func NewService(records AttendanceSource, employees EmployeeCounter, clock Clock) *Service {
	if clock == nil {
		clock = realClock{}
	}
	return &Service{records: records, employees: employees, clock: clock}
}

// Dashboard は従業員総数・勤怠総数と当日の出欠数を集計します。日付が欠落している
// レコードは読み飛ばします。
func (s *Service) Dashboard(ctx context.Context) (*DashboardSummary, error) {
	totalEmployees, err := s.employees.Count(ctx)
	if err != nil {
		return nil, err
	}

	totalRecords, err := s.records.Count(ctx)
	if err != nil {
		return nil, err
	}

	records, err := s.records.List(ctx)
	if err != nil {
		return nil, err
	}

	today := civildate.FromTime(s.clock.Now())
	summary := &DashboardSummary{
		TotalEmployees:         totalEmployees,
		TotalAttendanceRecords: totalRecords,
	}

	for _, record := range records {
		if record.Date.IsZero() || record.Date != today {
			continue
		}
		switch normalizeStatus(record.Status) {
		case "present":
			summary.PresentToday++
		case "absent":
			summary.AbsentToday++
		}
	}

	return summary, nil
}

// Performance は全期間の出勤率を集計します。Present / Absent 以外のステータスは
// 分子・分母のいずれにも含めません。レコードが 1 件もない場合はゼロ値を返します。
func (s *Service) Performance(ctx context.Context) (*PerformanceSummary, error) {
	totalEmployees, err := s.employees.Count(ctx)
	if err != nil {
		return nil, err
	}

	records, err := s.records.List(ctx)
	if err != nil {
		return nil, err
	}

	summary := &PerformanceSummary{EmployeeCount: totalEmployees}
	if len(records) == 0 {
		return summary, nil
	}

	for _, record := range records {
		switch normalizeStatus(record.Status) {
		case "present":
			summary.TotalPresent++
		case "absent":
			summary.TotalAbsent++
		}
	}

	summary.TotalRecords = summary.TotalPresent + summary.TotalAbsent
	if summary.TotalRecords > 0 {
		summary.AttendancePercentage = round2(float64(summary.TotalPresent) / float64(summary.TotalRecords) * 100)
	}

	return summary, nil
}

// Trend は当日を含む直近 30 日のトレンドを古い日付から順に返します。レコードが
// 存在しない日もゼロ値のエントリとして必ず含まれます。
func (s *Service) Trend(ctx context.Context) ([]TrendPoint, error) {
	records, err := s.records.List(ctx)
	if err != nil {
		return nil, err
	}

	today := civildate.FromTime(s.clock.Now())
	start := today.AddDays(-(trendWindowDays - 1))

	points := make([]TrendPoint, trendWindowDays)
	for i := range points {
		points[i].Date = start.AddDays(i)
	}

	for _, record := range records {
		if record.Date.IsZero() {
			continue
		}
		idx := record.Date.DaysSince(start)
		if idx < 0 || idx >= trendWindowDays {
			continue
		}
		switch normalizeStatus(record.Status) {
		case "present":
			points[idx].Present++
		case "absent":
			points[idx].Absent++
		}
		points[idx].Total++
	}

	for i := range points {
		if points[i].Total > 0 {
			points[i].AttendanceRate = round1(float64(points[i].Present) / float64(points[i].Total) * 100)
		}
	}

	return points, nil
}

func normalizeStatus(status attendance.Status) string {
	return strings.ToLower(strings.TrimSpace(string(status)))
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}

func round1(value float64) float64 {
	return math.Round(value*10) / 10
}
