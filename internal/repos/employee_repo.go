package repos

import (
	"github.com/jmoiron/sqlx"

	"github.com/WebFlexrr/vendorsphere-sub000/internal/domain"
)

type EmployeeRepo struct{ db *sqlx.DB }

func NewEmployeeRepo(db *sqlx.DB) *EmployeeRepo { return &EmployeeRepo{db: db} }

const employeeCols = `id, name, email, department, title, status, COALESCE(created_at,'') AS created_at`

func (r *EmployeeRepo) List() ([]domain.Employee, error) {
	var out []domain.Employee
	err := r.db.Select(&out, `SELECT `+employeeCols+` FROM employees ORDER BY name`)
	return out, err
}

func (r *EmployeeRepo) Get(id string) (*domain.Employee, error) {
	var e domain.Employee
	if err := r.db.Get(&e, `SELECT `+employeeCols+` FROM employees WHERE id = ?`, id); err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EmployeeRepo) Create(e *domain.Employee) error {
	_, err := r.db.Exec(`
		INSERT INTO employees(id, name, email, department, title, status, created_at)
		VALUES (?,?,?,?,?,?,?)`,
		e.ID, e.Name, e.Email, e.Department, e.Title, e.Status, e.CreatedAt)
	return err
}

func (r *EmployeeRepo) Update(e *domain.Employee) error {
	_, err := r.db.Exec(`
		UPDATE employees SET name=?, email=?, department=?, title=?, status=? WHERE id=?`,
		e.Name, e.Email, e.Department, e.Title, e.Status, e.ID)
	return err
}

func (r *EmployeeRepo) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM employees WHERE id=?`, id)
	return err
}
