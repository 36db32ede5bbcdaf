package services

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sparta/academy/internal/app/mappers"
	"github.com/sparta/academy/internal/app/models"
	"github.com/sparta/academy/internal/pkg/apperrors"
)

// mockCourseGateway is a map-backed CourseGateway for exercising the
// course service without a database.
type mockCourseGateway struct {
	courses     map[int64]*models.Course
	nextID      int64
	saveCalls   int
	deleteCalls int
	failWith    error
}

func newMockCourseGateway() *mockCourseGateway {
	return &mockCourseGateway{courses: make(map[int64]*models.Course), nextID: 1}
}

func (m *mockCourseGateway) put(course *models.Course) *models.Course {
	if course.ID == 0 {
		course.ID = m.nextID
		m.nextID++
	} else if course.ID >= m.nextID {
		m.nextID = course.ID + 1
	}
	m.courses[course.ID] = course
	return course
}

func (m *mockCourseGateway) sorted(courses []*models.Course) []*models.Course {
	sort.Slice(courses, func(i, j int) bool { return courses[i].ID < courses[j].ID })
	return courses
}

func (m *mockCourseGateway) Save(ctx context.Context, course *models.Course) error {
	m.saveCalls++
	if m.failWith != nil {
		return m.failWith
	}
	m.put(course)
	return nil
}

func (m *mockCourseGateway) FindByID(ctx context.Context, id int64) (*models.Course, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	return m.courses[id], nil
}

func (m *mockCourseGateway) FindAll(ctx context.Context) ([]*models.Course, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	out := make([]*models.Course, 0, len(m.courses))
	for _, c := range m.courses {
		out = append(out, c)
	}
	return m.sorted(out), nil
}

func (m *mockCourseGateway) ExistsByID(ctx context.Context, id int64) (bool, error) {
	if m.failWith != nil {
		return false, m.failWith
	}
	_, ok := m.courses[id]
	return ok, nil
}

func (m *mockCourseGateway) DeleteByID(ctx context.Context, id int64) error {
	m.deleteCalls++
	if m.failWith != nil {
		return m.failWith
	}
	delete(m.courses, id)
	return nil
}

func (m *mockCourseGateway) FindByTrainerID(ctx context.Context, trainerID int64) ([]*models.Course, error) {
	out := make([]*models.Course, 0)
	for _, c := range m.courses {
		if c.Trainer != nil && c.Trainer.ID == trainerID {
			out = append(out, c)
		}
	}
	return m.sorted(out), nil
}

func (m *mockCourseGateway) FindByTitleContaining(ctx context.Context, title string) ([]*models.Course, error) {
	out := make([]*models.Course, 0)
	for _, c := range m.courses {
		if strings.Contains(c.Title, title) {
			out = append(out, c)
		}
	}
	return m.sorted(out), nil
}

func (m *mockCourseGateway) FindByDescriptionContaining(ctx context.Context, description string) ([]*models.Course, error) {
	out := make([]*models.Course, 0)
	for _, c := range m.courses {
		if strings.Contains(c.Description, description) {
			out = append(out, c)
		}
	}
	return m.sorted(out), nil
}

func (m *mockCourseGateway) FindByTrainerIDAndEnrollDateAfter(ctx context.Context, trainerID int64, after models.Date) ([]*models.Course, error) {
	out := make([]*models.Course, 0)
	for _, c := range m.courses {
		if c.Trainer != nil && c.Trainer.ID == trainerID && after.Before(c.EnrollDate) {
			out = append(out, c)
		}
	}
	return m.sorted(out), nil
}

func (m *mockCourseGateway) CountByTrainerID(ctx context.Context, trainerID int64) (int64, error) {
	var count int64
	for _, c := range m.courses {
		if c.Trainer != nil && c.Trainer.ID == trainerID {
			count++
		}
	}
	return count, nil
}

func (m *mockCourseGateway) ExistsByTitleIgnoreCase(ctx context.Context, title string) (bool, error) {
	for _, c := range m.courses {
		if strings.EqualFold(c.Title, title) {
			return true, nil
		}
	}
	return false, nil
}

func newCourseServiceForTest() (CourseService, *mockCourseGateway, *mockTrainerGateway) {
	courseGateway := newMockCourseGateway()
	trainerGateway := newMockTrainerGateway()
	service := NewCourseService(courseGateway, trainerGateway, mappers.NewCourseMapper())
	return service, courseGateway, trainerGateway
}

func validCourse(trainerID int64) *models.Course {
	return &models.Course{
		Title:       "Go Fundamentals",
		Description: "Core language and tooling",
		EnrollDate:  models.Today().AddDays(5),
		Trainer:     &models.Trainer{ID: trainerID},
	}
}

func TestCreateCourse_ValidationOrder(t *testing.T) {
	service, courseGateway, trainerGateway := newCourseServiceForTest()
	trainer := trainerGateway.put(&models.Trainer{FullName: "Jane Smith"})
	ctx := context.Background()

	tests := []struct {
		name    string
		course  *models.Course
		wantMsg string
	}{
		{
			name:    "nil course",
			course:  nil,
			wantMsg: "Course cannot be null",
		},
		{
			name: "empty title",
			course: &models.Course{
				Description: "Core language and tooling",
				EnrollDate:  models.Today().AddDays(5),
				Trainer:     trainer,
			},
			wantMsg: "Course title cannot be empty",
		},
		{
			name: "whitespace title",
			course: &models.Course{
				Title:       "   ",
				Description: "Core language and tooling",
				EnrollDate:  models.Today().AddDays(5),
				Trainer:     trainer,
			},
			wantMsg: "Course title cannot be empty",
		},
		{
			name: "empty description",
			course: &models.Course{
				Title:      "Go Fundamentals",
				EnrollDate: models.Today().AddDays(5),
				Trainer:    trainer,
			},
			wantMsg: "Course description cannot be empty",
		},
		{
			name: "missing enroll date",
			course: &models.Course{
				Title:       "Go Fundamentals",
				Description: "Core language and tooling",
				Trainer:     trainer,
			},
			wantMsg: "Enroll date cannot be null",
		},
		{
			name: "past enroll date",
			course: &models.Course{
				Title:       "Go Fundamentals",
				Description: "Core language and tooling",
				EnrollDate:  models.Today().AddDays(-1),
				Trainer:     trainer,
			},
			wantMsg: "Enroll date cannot be in the past",
		},
		{
			name: "missing trainer",
			course: &models.Course{
				Title:       "Go Fundamentals",
				Description: "Core language and tooling",
				EnrollDate:  models.Today().AddDays(5),
			},
			wantMsg: "Course must have a trainer assigned",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record, err := service.CreateCourse(ctx, tt.course)

			assert.Nil(t, record)
			require.Error(t, err)
			assert.True(t, errors.Is(err, apperrors.ErrBadRequest))
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}

	// none of the rejected courses may reach the store
	assert.Zero(t, courseGateway.saveCalls)
}

func TestCreateCourse_EnrollDateTodayIsValid(t *testing.T) {
	service, _, trainerGateway := newCourseServiceForTest()
	trainer := trainerGateway.put(&models.Trainer{FullName: "Jane Smith"})

	course := validCourse(trainer.ID)
	course.EnrollDate = models.Today()

	record, err := service.CreateCourse(context.Background(), course)

	require.NoError(t, err)
	assert.True(t, record.EnrollDate.Equal(models.Today()))
}

func TestCreateCourse_UnknownTrainer(t *testing.T) {
	service, courseGateway, _ := newCourseServiceForTest()

	record, err := service.CreateCourse(context.Background(), validCourse(7))

	assert.Nil(t, record)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrTrainerNotFound))
	assert.Contains(t, err.Error(), "Trainer not found with ID: 7")
	assert.Zero(t, courseGateway.saveCalls)
}

func TestCreateCourse_Success(t *testing.T) {
	service, _, trainerGateway := newCourseServiceForTest()
	trainer := trainerGateway.put(&models.Trainer{FullName: "Jane Smith"})

	record, err := service.CreateCourse(context.Background(), validCourse(trainer.ID))

	require.NoError(t, err)
	assert.Equal(t, int64(1), record.ID)
	assert.Equal(t, "Go Fundamentals", record.Title)
	assert.Equal(t, trainer.ID, record.TrainerID)
}

func TestGetAllCourses_EmptyStore(t *testing.T) {
	service, _, _ := newCourseServiceForTest()

	records, err := service.GetAllCourses(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestGetCourseByID_NotFound(t *testing.T) {
	service, _, _ := newCourseServiceForTest()

	record, err := service.GetCourseByID(context.Background(), 13)

	assert.Nil(t, record)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrCourseNotFound))
	assert.Contains(t, err.Error(), "Course not found with ID: 13")
}

func TestUpdateCourse_InvalidArguments(t *testing.T) {
	service, _, _ := newCourseServiceForTest()
	ctx := context.Background()

	_, err := service.UpdateCourse(ctx, 0, validCourse(1))
	require.Error(t, err)
	assert.Equal(t, "Course ID and entity cannot be null", err.Error())

	_, err = service.UpdateCourse(ctx, 1, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrBadRequest))
}

func TestUpdateCourse_NotFound(t *testing.T) {
	service, _, trainerGateway := newCourseServiceForTest()
	trainer := trainerGateway.put(&models.Trainer{FullName: "Jane Smith"})

	record, err := service.UpdateCourse(context.Background(), 5, validCourse(trainer.ID))

	assert.Nil(t, record)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrCourseNotFound))
}

func TestUpdateCourse_ValidatesBeforeWrite(t *testing.T) {
	service, courseGateway, trainerGateway := newCourseServiceForTest()
	trainer := trainerGateway.put(&models.Trainer{FullName: "Jane Smith"})
	stored := courseGateway.put(validCourse(trainer.ID))
	courseGateway.saveCalls = 0

	invalid := validCourse(trainer.ID)
	invalid.Title = ""

	record, err := service.UpdateCourse(context.Background(), stored.ID, invalid)

	assert.Nil(t, record)
	require.Error(t, err)
	assert.Equal(t, "Course title cannot be empty", err.Error())
	assert.Zero(t, courseGateway.saveCalls)
}

func TestUpdateCourse_OverwritesFieldsPreservesIdentity(t *testing.T) {
	service, courseGateway, trainerGateway := newCourseServiceForTest()
	first := trainerGateway.put(&models.Trainer{FullName: "Jane Smith"})
	second := trainerGateway.put(&models.Trainer{FullName: "John Doe"})
	stored := courseGateway.put(validCourse(first.ID))

	incoming := &models.Course{
		ID:          999,
		Title:       "Advanced Go",
		Description: "Concurrency and internals",
		EnrollDate:  models.Today().AddDays(10),
		Trainer:     &models.Trainer{ID: second.ID},
	}

	record, err := service.UpdateCourse(context.Background(), stored.ID, incoming)

	require.NoError(t, err)
	assert.Equal(t, stored.ID, record.ID)
	assert.Equal(t, "Advanced Go", record.Title)
	assert.Equal(t, "Concurrency and internals", record.Description)
	assert.Equal(t, second.ID, record.TrainerID)
	assert.True(t, record.EnrollDate.Equal(models.Today().AddDays(10)))
	assert.NotContains(t, courseGateway.courses, int64(999))
}

func TestDeleteCourse_Idempotent(t *testing.T) {
	service, courseGateway, trainerGateway := newCourseServiceForTest()
	trainer := trainerGateway.put(&models.Trainer{FullName: "Jane Smith"})
	stored := courseGateway.put(validCourse(trainer.ID))
	ctx := context.Background()

	deleted, err := service.DeleteCourse(ctx, stored.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = service.DeleteCourse(ctx, stored.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.Equal(t, 1, courseGateway.deleteCalls)
}

func TestGetCoursesByTrainerID(t *testing.T) {
	service, courseGateway, trainerGateway := newCourseServiceForTest()
	first := trainerGateway.put(&models.Trainer{FullName: "Jane Smith"})
	second := trainerGateway.put(&models.Trainer{FullName: "John Doe"})
	courseGateway.put(validCourse(first.ID))
	courseGateway.put(validCourse(second.ID))

	records, err := service.GetCoursesByTrainerID(context.Background(), first.ID)

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, first.ID, records[0].TrainerID)
}

func TestGetCoursesByTrainerID_UnknownTrainer(t *testing.T) {
	service, _, _ := newCourseServiceForTest()

	records, err := service.GetCoursesByTrainerID(context.Background(), 9)

	assert.Nil(t, records)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrTrainerNotFound))
}

func TestGetUpcomingCoursesByTrainerID(t *testing.T) {
	service, courseGateway, trainerGateway := newCourseServiceForTest()
	trainer := trainerGateway.put(&models.Trainer{FullName: "Jane Smith"})

	near := validCourse(trainer.ID)
	near.EnrollDate = models.Today().AddDays(2)
	courseGateway.put(near)

	far := validCourse(trainer.ID)
	far.Title = "Advanced Go"
	far.EnrollDate = models.Today().AddDays(30)
	courseGateway.put(far)

	records, err := service.GetUpcomingCoursesByTrainerID(context.Background(), trainer.ID, models.Today().AddDays(10))

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Advanced Go", records[0].Title)
}

func TestGetUpcomingCoursesByTrainerID_DefaultsToToday(t *testing.T) {
	service, courseGateway, trainerGateway := newCourseServiceForTest()
	trainer := trainerGateway.put(&models.Trainer{FullName: "Jane Smith"})
	courseGateway.put(validCourse(trainer.ID))

	records, err := service.GetUpcomingCoursesByTrainerID(context.Background(), trainer.ID, models.Date{})

	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestSearchCoursesByTitle(t *testing.T) {
	service, courseGateway, trainerGateway := newCourseServiceForTest()
	trainer := trainerGateway.put(&models.Trainer{FullName: "Jane Smith"})
	courseGateway.put(validCourse(trainer.ID))

	other := validCourse(trainer.ID)
	other.Title = "Java Basics"
	courseGateway.put(other)

	records, err := service.SearchCoursesByTitle(context.Background(), "Go")

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Go Fundamentals", records[0].Title)
}

func TestSearchCoursesByTitle_EmptyQuery(t *testing.T) {
	service, _, _ := newCourseServiceForTest()

	records, err := service.SearchCoursesByTitle(context.Background(), "  ")

	assert.Nil(t, records)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrBadRequest))
}

func TestSearchCoursesByDescription(t *testing.T) {
	service, courseGateway, trainerGateway := newCourseServiceForTest()
	trainer := trainerGateway.put(&models.Trainer{FullName: "Jane Smith"})
	courseGateway.put(validCourse(trainer.ID))

	records, err := service.SearchCoursesByDescription(context.Background(), "tooling")

	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestCountCoursesByTrainerID(t *testing.T) {
	service, courseGateway, trainerGateway := newCourseServiceForTest()
	trainer := trainerGateway.put(&models.Trainer{FullName: "Jane Smith"})
	courseGateway.put(validCourse(trainer.ID))

	second := validCourse(trainer.ID)
	second.Title = "Advanced Go"
	courseGateway.put(second)

	count, err := service.CountCoursesByTrainerID(context.Background(), trainer.ID)

	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestIsTitleTaken(t *testing.T) {
	service, courseGateway, trainerGateway := newCourseServiceForTest()
	trainer := trainerGateway.put(&models.Trainer{FullName: "Jane Smith"})
	courseGateway.put(validCourse(trainer.ID))
	ctx := context.Background()

	taken, err := service.IsTitleTaken(ctx, "go fundamentals")
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = service.IsTitleTaken(ctx, "Rust Fundamentals")
	require.NoError(t, err)
	assert.False(t, taken)

	_, err = service.IsTitleTaken(ctx, "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrBadRequest))
}
