package app

// SQL migrations are embedded in the binary so deploys need nothing
// beyond the executable and a reachable database.

var migration001Wallets = `
CREATE TABLE IF NOT EXISTS wallets (
	name TEXT PRIMARY KEY,
	balance BIGINT NOT NULL DEFAULT 0,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS wallet_ledger (
	id BIGSERIAL PRIMARY KEY,
	wallet TEXT NOT NULL REFERENCES wallets(name),
	amount BIGINT NOT NULL,
	kind TEXT NOT NULL,
	ref TEXT NOT NULL DEFAULT '',
	note TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_wallet_ledger_wallet ON wallet_ledger(wallet, created_at);
`

var migration002Revenue = `
CREATE TABLE IF NOT EXISTS revenue_events (
	id BIGSERIAL PRIMARY KEY,
	channel TEXT NOT NULL,
	kind TEXT NOT NULL,
	amount BIGINT NOT NULL,
	note TEXT NOT NULL DEFAULT '',
	chat_id BIGINT NOT NULL DEFAULT 0,
	person_name TEXT NOT NULL DEFAULT '',
	person_email TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_revenue_events_created ON revenue_events(created_at);
`

var migration003Invites = `
CREATE TABLE IF NOT EXISTS invites (
	id BIGSERIAL PRIMARY KEY,
	channel TEXT NOT NULL,
	name TEXT NOT NULL,
	email TEXT NOT NULL,
	invited_at TIMESTAMPTZ NOT NULL,
	due_at TIMESTAMPTZ NOT NULL,
	status TEXT NOT NULL DEFAULT 'pending',
	chat_id BIGINT NOT NULL,
	last_reminded_at TIMESTAMPTZ,
	reward_amount BIGINT,
	done_at TIMESTAMPTZ,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_invites_status_due ON invites(status, due_at);

CREATE TABLE IF NOT EXISTS checkin_rewards (
	id BIGSERIAL PRIMARY KEY,
	invite_id BIGINT NOT NULL REFERENCES invites(id),
	channel TEXT NOT NULL,
	name TEXT NOT NULL,
	email TEXT NOT NULL,
	due_at TIMESTAMPTZ NOT NULL,
	reward BIGINT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

var migration004Devices = `
CREATE TABLE IF NOT EXISTS devices (
	id BIGSERIAL PRIMARY KEY,
	code TEXT NOT NULL,
	price BIGINT NOT NULL,
	purchase_date TIMESTAMPTZ NOT NULL,
	status TEXT NOT NULL DEFAULT 'bought',
	wallet TEXT,
	channel TEXT,
	game_amount BIGINT,
	profit BIGINT,
	resolved_at TIMESTAMPTZ,
	chat_id BIGINT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_devices_code ON devices(code, purchase_date DESC);

CREATE TABLE IF NOT EXISTS device_profits (
	id BIGSERIAL PRIMARY KEY,
	device_id BIGINT NOT NULL REFERENCES devices(id),
	code TEXT NOT NULL,
	channel TEXT NOT NULL,
	price BIGINT NOT NULL,
	game_amount BIGINT NOT NULL,
	profit BIGINT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

var migration005Lots = `
CREATE TABLE IF NOT EXISTS lots (
	id BIGSERIAL PRIMARY KEY,
	code TEXT NOT NULL UNIQUE,
	qty INTEGER NOT NULL,
	total_cost BIGINT NOT NULL,
	purchase_date TIMESTAMPTZ NOT NULL,
	wallet TEXT,
	chat_id BIGINT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS lot_results (
	id BIGSERIAL PRIMARY KEY,
	lot_id BIGINT NOT NULL REFERENCES lots(id),
	lot_code TEXT NOT NULL,
	qty INTEGER NOT NULL,
	total_cost BIGINT NOT NULL,
	ok_count INTEGER NOT NULL,
	tach_count INTEGER NOT NULL,
	channel TEXT NOT NULL,
	reward BIGINT,
	profit BIGINT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

var migration006Audit = `
CREATE TABLE IF NOT EXISTS audit_log (
	id BIGSERIAL PRIMARY KEY,
	action TEXT NOT NULL,
	payload JSONB NOT NULL DEFAULT '{}',
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS settings (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`
