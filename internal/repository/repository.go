package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ShishirShekhar/E-Learning-Platform/internal/model"
)

const uniqueViolation = "23505"

type Store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

func (s *Store) withTx(ctx context.Context, fn func(pgx.Tx) error) error {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	return tx.Commit(ctx)
}

func (s *Store) CreateUser(ctx context.Context, user model.User) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO users (id, name, email, password_hash, role)
		VALUES ($1, $2, $3, $4, $5)
	`, user.ID, user.Name, user.Email, user.PasswordHash, user.Role)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return model.ErrDuplicateEmail
	}
	return err
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT id, name, email, password_hash, role, created_at, updated_at
		FROM users
		WHERE email = $1
	`, email)
	return scanUser(row)
}

func (s *Store) GetUserByID(ctx context.Context, userID string) (model.User, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT id, name, email, password_hash, role, created_at, updated_at
		FROM users
		WHERE id = $1
	`, userID)
	return scanUser(row)
}

func (s *Store) ListUsers(ctx context.Context) ([]model.User, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, name, email, password_hash, role, created_at, updated_at
		FROM users
		ORDER BY created_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

// DeleteUser removes the user and returns the deleted record. Enrollments and
// courses referencing the user are left in place.
func (s *Store) DeleteUser(ctx context.Context, userID string) (model.User, error) {
	var user model.User
	err := s.withTx(ctx, func(tx pgx.Tx) error {
		row := tx.QueryRow(ctx, `
			SELECT id, name, email, password_hash, role, created_at, updated_at
			FROM users
			WHERE id = $1
		`, userID)
		var err error
		user, err = scanUser(row)
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx, `DELETE FROM users WHERE id = $1`, userID)
		return err
	})
	return user, err
}

func (s *Store) CreateCourse(ctx context.Context, course model.Course) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO courses (id, title, description, content, instructor_id)
		VALUES ($1, $2, $3, $4, $5)
	`, course.ID, course.Title, course.Description, course.Content, course.InstructorID)
	return err
}

func (s *Store) GetCourseByID(ctx context.Context, courseID string) (model.Course, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT id, title, description, content, instructor_id, created_at, updated_at
		FROM courses
		WHERE id = $1
	`, courseID)
	return scanCourse(row)
}

// CourseWithInstructor carries the instructor summary for admin listings.
// The instructor fields are empty when the referenced user no longer exists.
type CourseWithInstructor struct {
	model.Course
	InstructorName  string
	InstructorEmail string
}

func (s *Store) ListCoursesWithInstructor(ctx context.Context) ([]CourseWithInstructor, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT c.id, c.title, c.description, c.content, c.instructor_id, c.created_at, c.updated_at,
		       COALESCE(u.name, ''), COALESCE(u.email, '')
		FROM courses c
		LEFT JOIN users u ON u.id = c.instructor_id
		ORDER BY c.created_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []CourseWithInstructor
	for rows.Next() {
		var c CourseWithInstructor
		if err := rows.Scan(
			&c.ID, &c.Title, &c.Description, &c.Content, &c.InstructorID,
			&c.CreatedAt, &c.UpdatedAt, &c.InstructorName, &c.InstructorEmail,
		); err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	return courses, rows.Err()
}

// DeleteCourse removes the course and returns the deleted record. Tests and
// enrollments referencing it keep their now-dangling course id.
func (s *Store) DeleteCourse(ctx context.Context, courseID string) (model.Course, error) {
	var course model.Course
	err := s.withTx(ctx, func(tx pgx.Tx) error {
		row := tx.QueryRow(ctx, `
			SELECT id, title, description, content, instructor_id, created_at, updated_at
			FROM courses
			WHERE id = $1
		`, courseID)
		var err error
		course, err = scanCourse(row)
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx, `DELETE FROM courses WHERE id = $1`, courseID)
		return err
	})
	return course, err
}

// EnrollStudent records the enrollment as a single transactional insert. The
// primary key on (student_id, course_id) rejects repeat enrollments.
func (s *Store) EnrollStudent(ctx context.Context, studentID, courseID string) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO enrollments (student_id, course_id)
		VALUES ($1, $2)
	`, studentID, courseID)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return model.ErrAlreadyEnrolled
	}
	return err
}

func (s *Store) ListCoursesByStudent(ctx context.Context, studentID string) ([]model.Course, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT c.id, c.title, c.description, c.content, c.instructor_id, c.created_at, c.updated_at
		FROM enrollments e
		JOIN courses c ON c.id = e.course_id
		WHERE e.student_id = $1
		ORDER BY e.enrolled_at
	`, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []model.Course
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}
	return courses, rows.Err()
}

// CreateTest verifies the parent course and inserts the test in one
// transaction, so a test never appears without its course having existed at
// that moment.
func (s *Store) CreateTest(ctx context.Context, test model.Test) error {
	return s.withTx(ctx, func(tx pgx.Tx) error {
		var exists bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM courses WHERE id = $1)`, test.CourseID).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return model.ErrNotFound
		}
		_, err := tx.Exec(ctx, `
			INSERT INTO tests (id, topic, frequency, questions, course_id)
			VALUES ($1, $2, $3, $4, $5)
		`, test.ID, test.Topic, test.Frequency, test.Questions, test.CourseID)
		return err
	})
}

func (s *Store) ListTestsByFrequency(ctx context.Context, frequency string) ([]model.Test, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, topic, frequency, questions, course_id, created_at, updated_at
		FROM tests
		WHERE frequency = $1
		ORDER BY created_at
	`, frequency)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tests []model.Test
	for rows.Next() {
		var t model.Test
		if err := rows.Scan(&t.ID, &t.Topic, &t.Frequency, &t.Questions, &t.CourseID, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		tests = append(tests, t)
	}
	return tests, rows.Err()
}

func (s *Store) UpdateTestQuestions(ctx context.Context, testID string, questions []string) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE tests
		SET questions = $1, updated_at = now()
		WHERE id = $2
	`, questions, testID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

func scanUser(row pgx.Row) (model.User, error) {
	var user model.User
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.User{}, model.ErrNotFound
	}
	return user, err
}

func scanCourse(row pgx.Row) (model.Course, error) {
	var course model.Course
	err := row.Scan(
		&course.ID,
		&course.Title,
		&course.Description,
		&course.Content,
		&course.InstructorID,
		&course.CreatedAt,
		&course.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Course{}, model.ErrNotFound
	}
	return course, err
}
