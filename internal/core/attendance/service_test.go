package attendance

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/ogurasousui/hrms-lite/internal/core/civildate"
	"github.com/ogurasousui/hrms-lite/internal/core/employee"
)

type stubClock struct {
	now time.Time
}

func (s *stubClock) Now() time.Time {
	return s.now
}

func (s *stubClock) Advance(d time.Duration) {
	s.now = s.now.Add(d)
}

type stubDirectory struct {
	employees map[string]*employee.Employee
}

func newStubDirectory(employeeIDs ...string) *stubDirectory {
	dir := &stubDirectory{employees: make(map[string]*employee.Employee)}
	for i, id := range employeeIDs {
		dir.employees[id] = &employee.Employee{
			ID:         fmt.Sprintf("emp-%d", i+1),
			EmployeeID: id,
			FullName:   "Employee " + id,
			Email:      id + "@example.com",
			Department: "Engineering",
		}
	}
	return dir
}

func (d *stubDirectory) GetByEmployeeID(_ context.Context, employeeID string) (*employee.Employee, error) {
	emp, ok := d.employees[employeeID]
	if !ok {
		return nil, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

type fakeAttendanceRepo struct {
	records  map[string]*Attendance
	sequence int
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]*Attendance)}
}

func (r *fakeAttendanceRepo) Create(_ context.Context, a *Attendance) (*Attendance, error) {
	for _, existing := range r.records {
		if existing.EmployeeID == a.EmployeeID && existing.Date == a.Date {
			return nil, ErrAlreadyMarked
		}
	}
	clone := cloneAttendance(a)
	r.sequence++
	clone.ID = fmt.Sprintf("att-%d", r.sequence)
	r.records[clone.ID] = clone
	return cloneAttendance(clone), nil
}

func (r *fakeAttendanceRepo) UpdateStatus(_ context.Context, id string, status Status, updatedAt time.Time) (*Attendance, error) {
	record, ok := r.records[id]
	if !ok {
		return nil, ErrAttendanceNotFound
	}
	record.Status = status
	record.UpdatedAt = updatedAt
	return cloneAttendance(record), nil
}

func (r *fakeAttendanceRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.records[id]; !ok {
		return ErrAttendanceNotFound
	}
	delete(r.records, id)
	return nil
}

func (r *fakeAttendanceRepo) FindByID(_ context.Context, id string) (*Attendance, error) {
	record, ok := r.records[id]
	if !ok {
		return nil, ErrAttendanceNotFound
	}
	return cloneAttendance(record), nil
}

func (r *fakeAttendanceRepo) FindByEmployeeAndDate(_ context.Context, employeeID string, date civildate.Date) (*Attendance, error) {
	for _, record := range r.records {
		if record.EmployeeID == employeeID && record.Date == date {
			return cloneAttendance(record), nil
		}
	}
	return nil, ErrAttendanceNotFound
}

func (r *fakeAttendanceRepo) List(_ context.Context) ([]*Attendance, error) {
	result := make([]*Attendance, 0, len(r.records))
	for _, record := range r.records {
		result = append(result, cloneAttendance(record))
	}
	sort.Slice(result, func(i, j int) bool {
		return result[j].Date.Before(result[i].Date)
	})
	return result, nil
}

func (r *fakeAttendanceRepo) ListByEmployee(_ context.Context, employeeID string) ([]*Attendance, error) {
	result := make([]*Attendance, 0)
	for _, record := range r.records {
		if record.EmployeeID == employeeID {
			result = append(result, cloneAttendance(record))
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[j].Date.Before(result[i].Date)
	})
	return result, nil
}

func (r *fakeAttendanceRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.records)), nil
}

func cloneAttendance(a *Attendance) *Attendance {
	clone := *a
	return &clone
}

func TestMarkAttendance_Success(t *testing.T) {
	t.Parallel()

	clock := &stubClock{now: time.Date(2025, 3, 9, 9, 0, 0, 0, time.UTC)}
	svc := NewService(newFakeAttendanceRepo(), newStubDirectory("EMP001"), clock, nil)

	created, err := svc.MarkAttendance(context.Background(), MarkAttendanceInput{
		EmployeeID: "EMP001",
		Date:       "2025-03-09",
		Status:     StatusPresent,
	})
	if err != nil {
		t.Fatalf("MarkAttendance returned error: %v", err)
	}

	if created.Date != civildate.New(2025, time.March, 9) {
		t.Errorf("unexpected date: %v", created.Date)
	}
	if created.Status != StatusPresent {
		t.Errorf("unexpected status: %s", created.Status)
	}
	if !created.CreatedAt.Equal(clock.now) || !created.UpdatedAt.Equal(clock.now) {
		t.Errorf("expected timestamps stamped from clock")
	}
}

func TestMarkAttendance_InvalidStatus(t *testing.T) {
	t.Parallel()

	svc := NewService(newFakeAttendanceRepo(), newStubDirectory("EMP001"), nil, nil)

	for _, status := range []Status{"", "present", "PRESENT", "Late", "Holiday"} {
		_, err := svc.MarkAttendance(context.Background(), MarkAttendanceInput{
			EmployeeID: "EMP001",
			Date:       "2025-03-09",
			Status:     status,
		})
		if !errors.Is(err, ErrInvalidStatus) {
			t.Errorf("status %q: expected ErrInvalidStatus, got %v", status, err)
		}
	}
}

func TestMarkAttendance_UnknownEmployee(t *testing.T) {
	t.Parallel()

	repo := newFakeAttendanceRepo()
	svc := NewService(repo, newStubDirectory(), nil, nil)

	_, err := svc.MarkAttendance(context.Background(), MarkAttendanceInput{
		EmployeeID: "EMP999",
		Date:       "2025-03-09",
		Status:     StatusPresent,
	})
	if !errors.Is(err, employee.ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}

	count, _ := repo.Count(context.Background())
	if count != 0 {
		t.Fatalf("expected no record persisted, got %d", count)
	}
}

func TestMarkAttendance_InvalidDate(t *testing.T) {
	t.Parallel()

	svc := NewService(newFakeAttendanceRepo(), newStubDirectory("EMP001"), nil, nil)

	for _, raw := range []string{"", "09-03-2025", "2025/03/09", "someday"} {
		_, err := svc.MarkAttendance(context.Background(), MarkAttendanceInput{
			EmployeeID: "EMP001",
			Date:       raw,
			Status:     StatusAbsent,
		})
		if !errors.Is(err, ErrInvalidDate) {
			t.Errorf("date %q: expected ErrInvalidDate, got %v", raw, err)
		}
	}
}

func TestMarkAttendance_Duplicate(t *testing.T) {
	t.Parallel()

	svc := NewService(newFakeAttendanceRepo(), newStubDirectory("EMP001"), nil, nil)

	in := MarkAttendanceInput{EmployeeID: "EMP001", Date: "2025-03-09", Status: StatusPresent}
	if _, err := svc.MarkAttendance(context.Background(), in); err != nil {
		t.Fatalf("first mark returned error: %v", err)
	}

	in.Status = StatusAbsent
	if _, err := svc.MarkAttendance(context.Background(), in); !errors.Is(err, ErrAlreadyMarked) {
		t.Fatalf("expected ErrAlreadyMarked, got %v", err)
	}

	// 別の日であれば登録できる。
	in.Date = "2025-03-10"
	if _, err := svc.MarkAttendance(context.Background(), in); err != nil {
		t.Fatalf("mark on another date returned error: %v", err)
	}
}

func TestUpdateAttendanceStatus(t *testing.T) {
	t.Parallel()

	clock := &stubClock{now: time.Date(2025, 3, 9, 9, 0, 0, 0, time.UTC)}
	svc := NewService(newFakeAttendanceRepo(), newStubDirectory("EMP001"), clock, nil)

	created, err := svc.MarkAttendance(context.Background(), MarkAttendanceInput{
		EmployeeID: "EMP001",
		Date:       "2025-03-09",
		Status:     StatusPresent,
	})
	if err != nil {
		t.Fatalf("MarkAttendance returned error: %v", err)
	}

	clock.Advance(2 * time.Hour)

	updated, err := svc.UpdateAttendanceStatus(context.Background(), UpdateAttendanceStatusInput{
		ID:     created.ID,
		Status: StatusAbsent,
	})
	if err != nil {
		t.Fatalf("UpdateAttendanceStatus returned error: %v", err)
	}

	if updated.Status != StatusAbsent {
		t.Errorf("expected status updated to Absent, got %s", updated.Status)
	}
	if !updated.UpdatedAt.After(updated.CreatedAt) {
		t.Errorf("expected updated_at (%v) after created_at (%v)", updated.UpdatedAt, updated.CreatedAt)
	}

	result, err := svc.ListEmployeeAttendance(context.Background(), ListEmployeeAttendanceInput{EmployeeID: "EMP001"})
	if err != nil {
		t.Fatalf("ListEmployeeAttendance returned error: %v", err)
	}
	if len(result.Records) != 1 || result.Records[0].Status != StatusAbsent {
		t.Fatalf("expected single Absent record, got %+v", result.Records)
	}
}

func TestUpdateAttendanceStatus_Errors(t *testing.T) {
	t.Parallel()

	svc := NewService(newFakeAttendanceRepo(), newStubDirectory("EMP001"), nil, nil)

	if _, err := svc.UpdateAttendanceStatus(context.Background(), UpdateAttendanceStatusInput{ID: "att-1", Status: "Late"}); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}

	if _, err := svc.UpdateAttendanceStatus(context.Background(), UpdateAttendanceStatusInput{ID: "missing", Status: StatusPresent}); !errors.Is(err, ErrAttendanceNotFound) {
		t.Fatalf("expected ErrAttendanceNotFound, got %v", err)
	}
}

func TestListEmployeeAttendance_Stats(t *testing.T) {
	t.Parallel()

	svc := NewService(newFakeAttendanceRepo(), newStubDirectory("EMP001", "EMP002"), nil, nil)

	marks := []struct {
		date   string
		status Status
	}{
		{"2025-03-01", StatusPresent},
		{"2025-03-02", StatusPresent},
		{"2025-03-03", StatusAbsent},
	}
	for _, m := range marks {
		if _, err := svc.MarkAttendance(context.Background(), MarkAttendanceInput{EmployeeID: "EMP001", Date: m.date, Status: m.status}); err != nil {
			t.Fatalf("MarkAttendance returned error: %v", err)
		}
	}
	if _, err := svc.MarkAttendance(context.Background(), MarkAttendanceInput{EmployeeID: "EMP002", Date: "2025-03-01", Status: StatusAbsent}); err != nil {
		t.Fatalf("MarkAttendance returned error: %v", err)
	}

	result, err := svc.ListEmployeeAttendance(context.Background(), ListEmployeeAttendanceInput{EmployeeID: "EMP001"})
	if err != nil {
		t.Fatalf("ListEmployeeAttendance returned error: %v", err)
	}

	if result.Employee.EmployeeID != "EMP001" {
		t.Errorf("unexpected employee: %s", result.Employee.EmployeeID)
	}
	if result.Stats != (Stats{TotalRecords: 3, PresentDays: 2, AbsentDays: 1}) {
		t.Errorf("unexpected stats: %+v", result.Stats)
	}
	if len(result.Records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(result.Records))
	}
	// 日付の降順で返る。
	if result.Records[0].Date != civildate.New(2025, time.March, 3) {
		t.Errorf("expected newest record first, got %v", result.Records[0].Date)
	}

	if _, err := svc.ListEmployeeAttendance(context.Background(), ListEmployeeAttendanceInput{EmployeeID: "EMP999"}); !errors.Is(err, employee.ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}

func TestDeleteAttendance(t *testing.T) {
	t.Parallel()

	svc := NewService(newFakeAttendanceRepo(), newStubDirectory("EMP001"), nil, nil)

	created, err := svc.MarkAttendance(context.Background(), MarkAttendanceInput{EmployeeID: "EMP001", Date: "2025-03-09", Status: StatusPresent})
	if err != nil {
		t.Fatalf("MarkAttendance returned error: %v", err)
	}

	if err := svc.DeleteAttendance(context.Background(), DeleteAttendanceInput{ID: created.ID}); err != nil {
		t.Fatalf("DeleteAttendance returned error: %v", err)
	}

	if err := svc.DeleteAttendance(context.Background(), DeleteAttendanceInput{ID: created.ID}); !errors.Is(err, ErrAttendanceNotFound) {
		t.Fatalf("expected ErrAttendanceNotFound, got %v", err)
	}
}
