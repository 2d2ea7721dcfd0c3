package schema

// TableDefinitions contains the SQL statements that create the database
// tables. Statements are idempotent so initialization can run on every start.
//
// Note: settings carries no unique constraint. Its 0-or-1 cardinality is
// enforced by the repository.
var TableDefinitions = []string{
	`CREATE TABLE IF NOT EXISTS admins (
		id UUID PRIMARY KEY,
		email VARCHAR(255) UNIQUE NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		name VARCHAR(255) NOT NULL,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS contact_submissions (
		id UUID PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL,
		subject VARCHAR(255) NOT NULL,
		message TEXT NOT NULL,
		is_read BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS page_contents (
		id UUID PRIMARY KEY,
		page_name VARCHAR(255) UNIQUE NOT NULL,
		sections JSONB NOT NULL DEFAULT '[]',
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS projects (
		id UUID PRIMARY KEY,
		title VARCHAR(255) NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		category VARCHAR(100) NOT NULL,
		location VARCHAR(255) NOT NULL DEFAULT '',
		image_url TEXT NOT NULL DEFAULT '',
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		display_order INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS staff_members (
		id UUID PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		title VARCHAR(255) NOT NULL DEFAULT '',
		bio TEXT NOT NULL DEFAULT '',
		photo_url TEXT NOT NULL DEFAULT '',
		display_order INTEGER NOT NULL DEFAULT 0,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS settings (
		id UUID PRIMARY KEY,
		business_name VARCHAR(255),
		address VARCHAR(255),
		city VARCHAR(100),
		state VARCHAR(100),
		zip VARCHAR(20),
		phone VARCHAR(50),
		email VARCHAR(255),
		website VARCHAR(255),
		facebook VARCHAR(255),
		instagram VARCHAR(255),
		twitter VARCHAR(255),
		linkedin VARCHAR(255),
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_projects_category_order ON projects(category, display_order)`,
	`CREATE INDEX IF NOT EXISTS idx_staff_members_order ON staff_members(display_order)`,
	`CREATE INDEX IF NOT EXISTS idx_contact_submissions_created_at ON contact_submissions(created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_contact_submissions_is_read ON contact_submissions(is_read)`,
}

// TableNames lists the tables in creation order, used when dropping.
var TableNames = []string{
	"admins",
	"contact_submissions",
	"page_contents",
	"projects",
	"staff_members",
	"settings",
}
