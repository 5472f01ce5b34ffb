package db

const schema = `
CREATE TABLE IF NOT EXISTS mood_reports (
	id                   UUID PRIMARY KEY,
	user_id              TEXT NOT NULL,
	mood_text            TEXT NOT NULL,
	vibe_title           TEXT NOT NULL,
	motivational_message TEXT NOT NULL,
	playlist_links       JSONB NOT NULL DEFAULT '[]'::jsonb,
	created_at           TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS mood_reports_user_created_idx
	ON mood_reports (user_id, created_at DESC);
`
