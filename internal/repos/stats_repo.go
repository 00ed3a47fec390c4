package repos

import "github.com/jmoiron/sqlx"

// StatsRepo aggregates the dashboard widgets' counters.
type StatsRepo struct{ db *sqlx.DB }

func NewStatsRepo(db *sqlx.DB) *StatsRepo { return &StatsRepo{db: db} }

type DashboardStats struct {
	Products   int     `db:"products" json:"products"`
	Vendors    int     `db:"vendors" json:"vendors"`
	OpenOrders int     `db:"open_orders" json:"openOrders"`
	LowStock   int     `db:"low_stock" json:"lowStock"`
	Revenue    float64 `db:"revenue" json:"revenue"`
}

func (r *StatsRepo) Dashboard() (*DashboardStats, error) {
	var s DashboardStats
	err := r.db.Get(&s, `
		SELECT
		  (SELECT COUNT(*) FROM products)                                                    AS products,
		  (SELECT COUNT(*) FROM vendors)                                                     AS vendors,
		  (SELECT COUNT(*) FROM orders WHERE status IN ('PENDING','PROCESSING','SHIPPED'))   AS open_orders,
		  (SELECT COUNT(*) FROM inventory_items WHERE in_stock <= reorder_point)             AS low_stock,
		  (SELECT COALESCE(SUM(total),0) FROM orders WHERE status != 'CANCELED')             AS revenue`)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
