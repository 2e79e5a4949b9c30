package database

// Schema for the catalog and content tables. Products cascade on category
// delete; site_settings holds its single row at id 1.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS categories (
		id            BIGINT AUTO_INCREMENT PRIMARY KEY,
		name          VARCHAR(200) NOT NULL,
		slug          VARCHAR(200) NOT NULL UNIQUE,
		description   TEXT,
		image         VARCHAR(500) NOT NULL DEFAULT '',
		is_active     TINYINT(1) NOT NULL DEFAULT 1,
		display_order INT NOT NULL DEFAULT 0,
		created_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	)`,

	`CREATE TABLE IF NOT EXISTS products (
		id                BIGINT AUTO_INCREMENT PRIMARY KEY,
		category_id       BIGINT NOT NULL,
		name              VARCHAR(200) NOT NULL,
		slug              VARCHAR(200) NOT NULL UNIQUE,
		description       TEXT,
		short_description VARCHAR(300) NOT NULL DEFAULT '',
		price             DECIMAL(10,2) NOT NULL,
		old_price         DECIMAL(10,2) NULL,
		discount_price    DECIMAL(10,2) NULL,
		image             VARCHAR(500) NOT NULL DEFAULT '',
		sku               VARCHAR(100) NOT NULL DEFAULT '',
		brand             VARCHAR(200) NOT NULL DEFAULT '',
		rating            DECIMAL(3,1) NOT NULL DEFAULT 0,
		review_count      INT NOT NULL DEFAULT 0,
		stock             INT NOT NULL DEFAULT 0,
		is_active         TINYINT(1) NOT NULL DEFAULT 1,
		is_featured       TINYINT(1) NOT NULL DEFAULT 0,
		is_new            TINYINT(1) NOT NULL DEFAULT 0,
		in_stock          TINYINT(1) NOT NULL DEFAULT 1,
		created_at        DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at        DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		CONSTRAINT fk_products_category
			FOREIGN KEY (category_id) REFERENCES categories (id) ON DELETE CASCADE,
		INDEX idx_products_listing (is_active, created_at),
		INDEX idx_products_category (category_id)
	)`,

	`CREATE TABLE IF NOT EXISTS pages (
		id               BIGINT AUTO_INCREMENT PRIMARY KEY,
		title            VARCHAR(200) NOT NULL,
		slug             VARCHAR(200) NOT NULL UNIQUE,
		content          TEXT,
		excerpt          TEXT,
		meta_title       VARCHAR(200) NOT NULL DEFAULT '',
		meta_description TEXT,
		is_active        TINYINT(1) NOT NULL DEFAULT 1,
		show_in_header   TINYINT(1) NOT NULL DEFAULT 0,
		show_in_footer   TINYINT(1) NOT NULL DEFAULT 1,
		created_at       DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at       DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	)`,

	`CREATE TABLE IF NOT EXISTS promotions (
		id                BIGINT AUTO_INCREMENT PRIMARY KEY,
		title             VARCHAR(200) NOT NULL,
		slug              VARCHAR(200) NOT NULL UNIQUE,
		image             VARCHAR(500) NOT NULL DEFAULT '',
		description       TEXT,
		short_description VARCHAR(300) NOT NULL DEFAULT '',
		button_text       VARCHAR(50) NOT NULL DEFAULT '',
		button_url        VARCHAR(200) NOT NULL DEFAULT '',
		is_active         TINYINT(1) NOT NULL DEFAULT 1,
		start_date        DATE NULL,
		end_date          DATE NULL,
		created_at        DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at        DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	)`,

	`CREATE TABLE IF NOT EXISTS site_settings (
		id               BIGINT PRIMARY KEY,
		site_name        VARCHAR(100) NOT NULL DEFAULT 'MyBiz',
		site_tagline     VARCHAR(200) NOT NULL DEFAULT '',
		logo             VARCHAR(500) NOT NULL DEFAULT '',
		favicon          VARCHAR(500) NOT NULL DEFAULT '',
		hero_image       VARCHAR(500) NOT NULL DEFAULT '',
		primary_color    VARCHAR(7) NOT NULL DEFAULT '#3b82f6',
		secondary_color  VARCHAR(7) NOT NULL DEFAULT '#8b5cf6',
		accent_color     VARCHAR(7) NOT NULL DEFAULT '#10b981',
		text_color       VARCHAR(7) NOT NULL DEFAULT '#1f2937',
		background_color VARCHAR(7) NOT NULL DEFAULT '#f9fafb',
		header_bg_color  VARCHAR(7) NOT NULL DEFAULT '#ffffff',
		footer_bg_color  VARCHAR(7) NOT NULL DEFAULT '#111827',
		contact_email    VARCHAR(254) NOT NULL DEFAULT '',
		contact_phone    VARCHAR(20) NOT NULL DEFAULT '',
		contact_address  TEXT,
		working_hours    VARCHAR(100) NOT NULL DEFAULT '',
		facebook_url     VARCHAR(500) NOT NULL DEFAULT '',
		instagram_url    VARCHAR(500) NOT NULL DEFAULT '',
		twitter_url      VARCHAR(500) NOT NULL DEFAULT '',
		show_facebook    TINYINT(1) NOT NULL DEFAULT 1,
		show_instagram   TINYINT(1) NOT NULL DEFAULT 1,
		show_twitter     TINYINT(1) NOT NULL DEFAULT 1,
		meta_title       VARCHAR(200) NOT NULL DEFAULT '',
		meta_description TEXT,
		meta_keywords    TEXT,
		updated_at       DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	)`,

	`CREATE TABLE IF NOT EXISTS admins (
		id            BIGINT AUTO_INCREMENT PRIMARY KEY,
		email         VARCHAR(254) NOT NULL UNIQUE,
		password_hash VARCHAR(100) NOT NULL,
		name          VARCHAR(200) NOT NULL DEFAULT '',
		created_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
}
