package database

// DefaultTables returns the application schema in creation order. Tables
// referenced by foreign keys come first.
func DefaultTables() []TableDef {
	return []TableDef{
		{Name: "users", DDL: `CREATE TABLE IF NOT EXISTS users (
			id {pk},
			username TEXT UNIQUE NOT NULL,
			register_number TEXT UNIQUE NOT NULL,
			department TEXT NOT NULL,
			total_points INTEGER DEFAULT 0,
			current_streak INTEGER DEFAULT 0,
			best_streak INTEGER DEFAULT 0,
			badges TEXT DEFAULT '[]',
			created_at {timestamp}
		)`},
		{Name: "admins", DDL: `CREATE TABLE IF NOT EXISTS admins (
			id {pk},
			username TEXT UNIQUE NOT NULL,
			password_hash TEXT NOT NULL,
			created_at {timestamp}
		)`},
		{Name: "biographies", DDL: `CREATE TABLE IF NOT EXISTS biographies (
			id {pk},
			title TEXT NOT NULL,
			person_name TEXT NOT NULL,
			content TEXT NOT NULL,
			profession TEXT NOT NULL,
			created_by INTEGER,
			created_at {timestamp},
			FOREIGN KEY (created_by) REFERENCES admins (id)
		)`},
		{Name: "daily_quotes", DDL: `CREATE TABLE IF NOT EXISTS daily_quotes (
			id {pk},
			quote TEXT NOT NULL,
			author TEXT,
			posted_by INTEGER NOT NULL,
			department TEXT NOT NULL,
			post_date DATE NOT NULL,
			is_featured BOOLEAN DEFAULT FALSE,
			created_at {timestamp},
			FOREIGN KEY (posted_by) REFERENCES users (id)
		)`},
		{Name: "listening_content", DDL: `CREATE TABLE IF NOT EXISTS listening_content (
			id {pk},
			title TEXT NOT NULL,
			audio_file TEXT NOT NULL,
			transcript TEXT NOT NULL,
			robot_character TEXT DEFAULT 'boy',
			created_by INTEGER,
			created_at {timestamp},
			FOREIGN KEY (created_by) REFERENCES admins (id)
		)`},
		{Name: "observation_content", DDL: `CREATE TABLE IF NOT EXISTS observation_content (
			id {pk},
			title TEXT NOT NULL,
			video_url TEXT NOT NULL,
			questions TEXT NOT NULL,
			correct_answers TEXT NOT NULL,
			created_by INTEGER,
			created_at {timestamp},
			FOREIGN KEY (created_by) REFERENCES admins (id)
		)`},
		{Name: "writing_topics", DDL: `CREATE TABLE IF NOT EXISTS writing_topics (
			id {pk},
			topic TEXT NOT NULL,
			description TEXT,
			created_by INTEGER,
			created_at {timestamp},
			FOREIGN KEY (created_by) REFERENCES admins (id)
		)`},
		{Name: "tasks", DDL: `CREATE TABLE IF NOT EXISTS tasks (
			id {pk},
			title TEXT NOT NULL,
			description TEXT,
			department TEXT DEFAULT 'ALL',
			due_date DATE,
			is_active BOOLEAN DEFAULT TRUE,
			created_by INTEGER,
			created_at {timestamp},
			module_type TEXT,
			content_id INTEGER,
			FOREIGN KEY (created_by) REFERENCES admins (id)
		)`},
		{Name: "user_completions", DDL: `CREATE TABLE IF NOT EXISTS user_completions (
			id {pk},
			user_id INTEGER NOT NULL,
			module_type TEXT NOT NULL,
			content_id INTEGER NOT NULL,
			score INTEGER NOT NULL,
			points_earned INTEGER NOT NULL,
			completed_at {timestamp},
			FOREIGN KEY (user_id) REFERENCES users (id)
		)`},
		{Name: "user_streaks", DDL: `CREATE TABLE IF NOT EXISTS user_streaks (
			id {pk},
			user_id INTEGER NOT NULL,
			streak_date DATE NOT NULL,
			modules_completed INTEGER DEFAULT 0,
			points_earned INTEGER DEFAULT 0,
			FOREIGN KEY (user_id) REFERENCES users (id)
		)`},
		{Name: "speaking_attempts", DDL: `CREATE TABLE IF NOT EXISTS speaking_attempts (
			id {pk},
			user_id INTEGER NOT NULL,
			bio_id INTEGER NOT NULL,
			attempt_at {timestamp},
			FOREIGN KEY (user_id) REFERENCES users (id),
			FOREIGN KEY (bio_id) REFERENCES biographies (id)
		)`},
	}
}
