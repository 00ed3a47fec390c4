package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Seed the demo marketplace if the store is empty
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}
	// Ensure operator accounts exist (idempotent; safe to run every start)
	if err := seedUsers(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Vendors (marketplace sellers)
CREATE TABLE IF NOT EXISTS vendors(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  contact_email TEXT NOT NULL,
  phone TEXT NOT NULL DEFAULT '',
  commission_rate NUMERIC NOT NULL DEFAULT 0 CHECK (commission_rate >= 0),
  status TEXT NOT NULL DEFAULT 'ACTIVE' CHECK (status IN ('ACTIVE','PENDING','SUSPENDED')),
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_vendors_name_nocase ON vendors(LOWER(name));

-- Products
CREATE TABLE IF NOT EXISTS products(
  id TEXT PRIMARY KEY,
  vendor_id TEXT NOT NULL REFERENCES vendors(id) ON DELETE RESTRICT,
  name TEXT NOT NULL,
  sku TEXT NOT NULL UNIQUE,
  category TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  cost_price NUMERIC NOT NULL CHECK (cost_price >= 0),
  retail_price NUMERIC NOT NULL CHECK (retail_price >= 0),
  status TEXT NOT NULL DEFAULT 'ACTIVE' CHECK (status IN ('ACTIVE','DRAFT','ARCHIVED')),
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE INDEX IF NOT EXISTS idx_products_vendor   ON products(vendor_id);
CREATE INDEX IF NOT EXISTS idx_products_category ON products(category);

-- Inventory items (denormalized product/vendor names for list screens)
CREATE TABLE IF NOT EXISTS inventory_items(
  id TEXT PRIMARY KEY,
  product_id TEXT NOT NULL REFERENCES products(id) ON DELETE CASCADE,
  product_name TEXT NOT NULL,
  sku TEXT NOT NULL,
  category TEXT NOT NULL,
  vendor_name TEXT NOT NULL,
  warehouse TEXT NOT NULL DEFAULT '',
  in_stock INTEGER NOT NULL DEFAULT 0,
  reorder_point INTEGER NOT NULL DEFAULT 0 CHECK (reorder_point >= 0),
  on_order INTEGER NOT NULL DEFAULT 0 CHECK (on_order >= 0),
  cost_price NUMERIC NOT NULL DEFAULT 0,
  retail_price NUMERIC NOT NULL DEFAULT 0,
  status TEXT NOT NULL,
  last_updated TEXT
);
CREATE INDEX IF NOT EXISTS idx_inventory_product ON inventory_items(product_id);

-- Stock movement ledger: append-only, rows are never updated or deleted.
-- seq orders the ledger; listing newest-first means seq DESC.
CREATE TABLE IF NOT EXISTS stock_movements(
  seq INTEGER PRIMARY KEY AUTOINCREMENT,
  id TEXT NOT NULL UNIQUE,
  product_id TEXT NOT NULL,
  product_name TEXT NOT NULL,
  movement_type TEXT NOT NULL CHECK (movement_type IN ('RECEIVED','SOLD','RETURNED','ADJUSTED','TRANSFERRED')),
  quantity_change INTEGER NOT NULL,
  quantity_before INTEGER NOT NULL,
  quantity_after INTEGER NOT NULL,
  reference TEXT NOT NULL,
  notes TEXT NOT NULL DEFAULT '',
  created_by TEXT NOT NULL DEFAULT '',
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_movements_product ON stock_movements(product_id);

-- Orders
CREATE TABLE IF NOT EXISTS orders(
  id TEXT PRIMARY KEY,
  vendor_id TEXT NOT NULL REFERENCES vendors(id),
  customer_name TEXT NOT NULL,
  customer_email TEXT NOT NULL,
  total NUMERIC NOT NULL CHECK (total >= 0),
  status TEXT NOT NULL DEFAULT 'PENDING' CHECK (status IN ('PENDING','PROCESSING','SHIPPED','DELIVERED','CANCELED')),
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_orders_created_at ON orders(created_at);

-- Employees
CREATE TABLE IF NOT EXISTS employees(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  email TEXT NOT NULL UNIQUE,
  department TEXT NOT NULL DEFAULT '',
  title TEXT NOT NULL DEFAULT '',
  status TEXT NOT NULL DEFAULT 'ACTIVE' CHECK (status IN ('ACTIVE','ON_LEAVE','TERMINATED')),
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);

-- Blog posts & CMS pages
CREATE TABLE IF NOT EXISTS blog_posts(
  id TEXT PRIMARY KEY,
  title TEXT NOT NULL,
  slug TEXT NOT NULL UNIQUE,
  author TEXT NOT NULL DEFAULT '',
  meta_description TEXT NOT NULL DEFAULT '',
  keywords TEXT NOT NULL DEFAULT '',
  content TEXT NOT NULL DEFAULT '',
  seo_score INTEGER NOT NULL DEFAULT 0,
  status TEXT NOT NULL DEFAULT 'DRAFT' CHECK (status IN ('DRAFT','PUBLISHED')),
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);

CREATE TABLE IF NOT EXISTS cms_pages(
  id TEXT PRIMARY KEY,
  title TEXT NOT NULL,
  slug TEXT NOT NULL UNIQUE,
  meta_description TEXT NOT NULL DEFAULT '',
  keywords TEXT NOT NULL DEFAULT '',
  content TEXT NOT NULL DEFAULT '',
  seo_score INTEGER NOT NULL DEFAULT 0,
  status TEXT NOT NULL DEFAULT 'DRAFT' CHECK (status IN ('DRAFT','PUBLISHED')),
  updated_at TEXT
);

-- Integrations
CREATE TABLE IF NOT EXISTS integrations(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  provider TEXT NOT NULL,
  category TEXT NOT NULL,
  status TEXT NOT NULL DEFAULT 'DISCONNECTED' CHECK (status IN ('CONNECTED','DISCONNECTED')),
  connected_at TEXT NOT NULL DEFAULT ''
);

-- Marketing campaigns (feed the analytics report)
CREATE TABLE IF NOT EXISTS campaigns(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  channel TEXT NOT NULL,
  impressions INTEGER NOT NULL DEFAULT 0,
  clicks INTEGER NOT NULL DEFAULT 0,
  conversions INTEGER NOT NULL DEFAULT 0,
  spend NUMERIC NOT NULL DEFAULT 0,
  revenue NUMERIC NOT NULL DEFAULT 0,
  starts_at TEXT NOT NULL DEFAULT '',
  ends_at TEXT NOT NULL DEFAULT ''
);

-- Store settings (single row)
CREATE TABLE IF NOT EXISTS settings(
  id INTEGER PRIMARY KEY CHECK (id = 1),
  store_name TEXT NOT NULL,
  currency TEXT NOT NULL DEFAULT 'USD',
  tax_rate NUMERIC NOT NULL DEFAULT 0,
  support_email TEXT NOT NULL DEFAULT '',
  low_stock_alerts INTEGER NOT NULL DEFAULT 1
);

-- Operator accounts
CREATE TABLE IF NOT EXISTS users(
  id TEXT PRIMARY KEY,
  email TEXT NOT NULL UNIQUE,
  name TEXT NOT NULL,
  password_hash TEXT NOT NULL,
  role TEXT NOT NULL CHECK (role IN ('ADMIN','EMPLOYEE')),
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users(LOWER(email));
`
	_, err := db.Exec(schema)
	return err
}

func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM vendors`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo vendors/products/inventory")

	tx := db.MustBegin()
	tx.MustExec(`INSERT INTO vendors(id,name,contact_email,phone,commission_rate,status) VALUES
	  ('ven-aurora','Aurora Audio','sales@auroraaudio.test','+1-555-0101',12.5,'ACTIVE'),
	  ('ven-northpeak','NorthPeak Outdoors','hello@northpeak.test','+1-555-0102',10.0,'ACTIVE'),
	  ('ven-lumen','Lumen Homeware','contact@lumenhome.test','+1-555-0103',15.0,'PENDING')`)

	tx.MustExec(`INSERT INTO products(id,vendor_id,name,sku,category,description,cost_price,retail_price,status) VALUES
	  ('prod-hp01','ven-aurora','Aurora Over-Ear Headphones','AUR-HP-001','electronics','Wireless over-ear headphones, 30h battery.',54.00,129.99,'ACTIVE'),
	  ('prod-sp02','ven-aurora','Aurora Bookshelf Speaker','AUR-SP-002','electronics','Compact powered bookshelf speaker.',61.50,149.00,'ACTIVE'),
	  ('prod-tn01','ven-northpeak','NorthPeak 2P Tent','NP-TN-001','outdoors','Two-person three-season tent.',88.00,219.00,'ACTIVE'),
	  ('prod-bt02','ven-northpeak','NorthPeak Insulated Bottle','NP-BT-002','outdoors','750ml vacuum insulated bottle.',9.20,29.95,'ACTIVE'),
	  ('prod-lm01','ven-lumen','Lumen Ceramic Table Lamp','LM-LA-001','homeware','Hand-glazed ceramic lamp, warm LED.',18.75,59.00,'DRAFT')`)

	tx.MustExec(`INSERT INTO inventory_items(id,product_id,product_name,sku,category,vendor_name,warehouse,in_stock,reorder_point,on_order,cost_price,retail_price,status,last_updated) VALUES
	  ('inv-hp01','prod-hp01','Aurora Over-Ear Headphones','AUR-HP-001','electronics','Aurora Audio','WH-EAST',42,15,0,54.00,129.99,'IN_STOCK','2026-08-20'),
	  ('inv-sp02','prod-sp02','Aurora Bookshelf Speaker','AUR-SP-002','electronics','Aurora Audio','WH-EAST',7,10,25,61.50,149.00,'LOW_STOCK','2026-08-24'),
	  ('inv-tn01','prod-tn01','NorthPeak 2P Tent','NP-TN-001','outdoors','NorthPeak Outdoors','WH-WEST',0,8,40,88.00,219.00,'OUT_OF_STOCK','2026-08-18'),
	  ('inv-bt02','prod-bt02','NorthPeak Insulated Bottle','NP-BT-002','outdoors','NorthPeak Outdoors','WH-WEST',310,60,0,9.20,29.95,'OVERSTOCKED','2026-08-11'),
	  ('inv-lm01','prod-lm01','Lumen Ceramic Table Lamp','LM-LA-001','homeware','Lumen Homeware','WH-EAST',25,12,0,18.75,59.00,'IN_STOCK','2026-08-22')`)

	tx.MustExec(`INSERT INTO stock_movements(id,product_id,product_name,movement_type,quantity_change,quantity_before,quantity_after,reference,notes,created_by,created_at) VALUES
	  ('mov-0001','prod-hp01','Aurora Over-Ear Headphones','RECEIVED',50,0,50,'PO-2047','Initial receiving','seed','2026-08-02T10:15:00Z'),
	  ('mov-0002','prod-hp01','Aurora Over-Ear Headphones','SOLD',-8,50,42,'ORD-1184','','seed','2026-08-20T16:42:00Z'),
	  ('mov-0003','prod-tn01','NorthPeak 2P Tent','SOLD',-12,12,0,'ORD-1190','Season sell-out','seed','2026-08-18T09:05:00Z')`)

	tx.MustExec(`INSERT INTO orders(id,vendor_id,customer_name,customer_email,total,status,created_at) VALUES
	  ('ord-1184','ven-aurora','Dana Whitfield','dana.w@example.com',1039.92,'DELIVERED','2026-08-20T16:40:00Z'),
	  ('ord-1190','ven-northpeak','Marcus Oyelaran','m.oyelaran@example.com',2628.00,'SHIPPED','2026-08-18T09:00:00Z'),
	  ('ord-1193','ven-aurora','Priya Raghavan','priya.r@example.com',149.00,'PROCESSING','2026-08-27T11:22:00Z'),
	  ('ord-1195','ven-lumen','Tomás Ferreira','t.ferreira@example.com',118.00,'PENDING','2026-08-29T14:03:00Z')`)

	tx.MustExec(`INSERT INTO employees(id,name,email,department,title,status) VALUES
	  ('emp-01','Rosa Delgado','rosa@vendorsphere.test','Operations','Warehouse Lead','ACTIVE'),
	  ('emp-02','Ken Watanabe','ken@vendorsphere.test','Support','Support Specialist','ACTIVE'),
	  ('emp-03','Maja Lindqvist','maja@vendorsphere.test','Marketing','Content Manager','ON_LEAVE')`)

	tx.MustExec(`INSERT INTO blog_posts(id,title,slug,author,meta_description,keywords,content,seo_score,status,created_at) VALUES
	  ('post-01','Choosing the Right Headphones for the Home Office','choosing-the-right-headphones','Maja Lindqvist',
	   'A practical guide to picking wireless headphones for remote work, covering comfort, battery life and call quality for long days.',
	   'headphones, remote work, audio','Working from home changed what we want from headphones. Comfort over long calls matters more than raw specs, and battery anxiety is real. In this guide we walk through what actually matters: clamping force, earcup rotation, multipoint pairing, and the difference a good microphone array makes on conference calls.',
	   96,'PUBLISHED','2026-07-14T08:00:00Z'),
	  ('post-02','Fall Camping Checklist','fall-camping-checklist','Maja Lindqvist',
	   'Everything you need for shoulder-season camping.','camping, checklist','Shorter version pending.',70,'DRAFT','2026-08-25T12:00:00Z')`)

	tx.MustExec(`INSERT INTO cms_pages(id,title,slug,meta_description,keywords,content,seo_score,status) VALUES
	  ('page-about','About VendorSphere','about','VendorSphere is a curated multi-vendor marketplace connecting independent makers with customers who value well-made goods.','marketplace, vendors, about','VendorSphere started as a weekend market and grew into a marketplace for independent makers. We vet every vendor, hold inventory to honest standards, and publish our commission rates. This page covers who we are and how the marketplace works for both sides of the counter.',89,'PUBLISHED'),
	  ('page-shipping','Shipping & Returns','shipping-returns','How shipping and returns work.','shipping, returns','Draft copy.',62,'DRAFT')`)

	tx.MustExec(`INSERT INTO integrations(id,name,provider,category,status,connected_at) VALUES
	  ('int-stripe','Stripe Payments','stripe','payments','CONNECTED','2026-06-01T00:00:00Z'),
	  ('int-shippo','Shippo Labels','shippo','shipping','CONNECTED','2026-06-15T00:00:00Z'),
	  ('int-mailer','Mailhawk Campaigns','mailhawk','marketing','DISCONNECTED',''),
	  ('int-ga','SiteMetrics Analytics','sitemetrics','analytics','DISCONNECTED','')`)

	tx.MustExec(`INSERT INTO campaigns(id,name,channel,impressions,clicks,conversions,spend,revenue,starts_at,ends_at) VALUES
	  ('cmp-01','Back to School Audio','search',184220,6112,388,2450.00,18230.50,'2026-08-01','2026-08-31'),
	  ('cmp-02','Fall Outdoors Preview','social',92780,3015,142,1180.00,7410.00,'2026-08-10','2026-09-10'),
	  ('cmp-03','Homeware Launch Teaser','email',30410,2204,96,310.00,3890.00,'2026-08-15','2026-09-01')`)

	tx.MustExec(`INSERT INTO settings(id,store_name,currency,tax_rate,support_email,low_stock_alerts) VALUES
	  (1,'VendorSphere','USD',7.25,'support@vendorsphere.test',1)`)

	return tx.Commit()
}

// seedUsers ensures one ADMIN and one EMPLOYEE exist (idempotent).
func seedUsers(db *sqlx.DB) error {
	type u struct {
		ID, Email, Name, Role, Hash string
	}
	mk := func(id, email, name, role, raw string) u {
		h, _ := bcrypt.GenerateFromPassword([]byte(raw), 12)
		return u{ID: id, Email: email, Name: name, Role: role, Hash: string(h)}
	}

	users := []u{
		mk("u-admin", "admin@vendorsphere.test", "Avery Admin", "ADMIN", "Passw0rd!"),
		mk("u-rosa", "rosa@vendorsphere.test", "Rosa Delgado", "EMPLOYEE", "Passw0rd!"),
	}

	tx := db.MustBegin()
	defer func() { _ = tx.Rollback() }()

	for _, x := range users {
		if _, err := tx.Exec(`
			INSERT INTO users(id,email,name,password_hash,role)
			VALUES(?,?,?,?,?)
			ON CONFLICT(email) DO NOTHING
		`, x.ID, x.Email, x.Name, x.Hash, x.Role); err != nil {
			return err
		}
	}

	return tx.Commit()
}
