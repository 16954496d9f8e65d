// ABOUTME: Versioned schema for the practice database.
// ABOUTME: DDL is written to run unchanged on both SQLite and Postgres.

package store

// Migration version constants
const (
	MigrationV1 = 1 // Patients, scheduling, leads, AI actions, outreach
	MigrationV2 = 2 // Calls, billing, daily metrics, expenses, payables
	MigrationV3 = 3 // Providers, referrals, HR, benefits, licensing
	MigrationV4 = 4 // Seed run history
)

// CurrentSchemaVersion is the target version for the database schema
const CurrentSchemaVersion = MigrationV4

type migration struct {
	version     int
	description string
	statements  []string
}

var migrations = []migration{
	{
		version:     MigrationV1,
		description: "Create practice, scheduling, and outreach tables",
		statements: []string{
			`CREATE TABLE IF NOT EXISTS patients (
				id TEXT PRIMARY KEY,
				first_name TEXT NOT NULL,
				last_name TEXT NOT NULL,
				email TEXT,
				phone TEXT,
				date_of_birth DATE,
				address TEXT,
				city TEXT,
				state TEXT,
				zip TEXT,
				insurance_provider TEXT,
				insurance_member_id TEXT,
				insurance_group_number TEXT,
				status TEXT NOT NULL DEFAULT 'active',
				last_visit DATE,
				tags TEXT,
				deleted_at TIMESTAMP,
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			)`,
			`CREATE TABLE IF NOT EXISTS appointments (
				id TEXT PRIMARY KEY,
				patient_id TEXT NOT NULL REFERENCES patients(id) ON DELETE CASCADE,
				provider_name TEXT,
				appointment_date DATE NOT NULL,
				appointment_time TEXT NOT NULL,
				duration_minutes INTEGER,
				type TEXT,
				status TEXT NOT NULL,
				confirmation_sent BOOLEAN DEFAULT FALSE,
				reminder_24h_sent BOOLEAN DEFAULT FALSE,
				reminder_2h_sent BOOLEAN DEFAULT FALSE,
				insurance_verified BOOLEAN DEFAULT FALSE,
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			)`,
			`CREATE TABLE IF NOT EXISTS leads (
				id TEXT PRIMARY KEY,
				first_name TEXT,
				last_name TEXT,
				email TEXT,
				phone TEXT,
				source TEXT,
				status TEXT NOT NULL,
				inquiry_type TEXT,
				message TEXT,
				urgency TEXT,
				ai_response_draft TEXT,
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			)`,
			`CREATE TABLE IF NOT EXISTS ai_actions (
				id TEXT PRIMARY KEY,
				action_type TEXT NOT NULL,
				module TEXT,
				description TEXT,
				input_data TEXT,
				output_data TEXT,
				status TEXT NOT NULL,
				lead_id TEXT REFERENCES leads(id) ON DELETE SET NULL,
				patient_id TEXT REFERENCES patients(id) ON DELETE SET NULL,
				confidence_score NUMERIC,
				approved_by TEXT,
				approved_at TIMESTAMP,
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			)`,
			`CREATE TABLE IF NOT EXISTS insurance_verifications (
				id TEXT PRIMARY KEY,
				patient_id TEXT NOT NULL REFERENCES patients(id) ON DELETE CASCADE,
				insurance_provider TEXT,
				member_id TEXT,
				group_number TEXT,
				status TEXT NOT NULL,
				coverage_type TEXT,
				deductible NUMERIC,
				deductible_met NUMERIC,
				annual_maximum NUMERIC,
				annual_used NUMERIC,
				preventive_coverage INTEGER,
				basic_coverage INTEGER,
				major_coverage INTEGER,
				orthodontic_coverage INTEGER,
				verified_by TEXT,
				verified_at TIMESTAMP,
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			)`,
			`CREATE TABLE IF NOT EXISTS treatment_plans (
				id TEXT PRIMARY KEY,
				patient_id TEXT NOT NULL REFERENCES patients(id) ON DELETE CASCADE,
				provider_name TEXT,
				title TEXT NOT NULL,
				status TEXT NOT NULL,
				procedures TEXT,
				total_cost NUMERIC,
				insurance_estimate NUMERIC,
				patient_estimate NUMERIC,
				ai_summary TEXT,
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			)`,
			`CREATE TABLE IF NOT EXISTS lead_nurture_sequences (
				id TEXT PRIMARY KEY,
				lead_id TEXT REFERENCES leads(id) ON DELETE CASCADE,
				step INTEGER,
				status TEXT,
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			)`,
			`CREATE TABLE IF NOT EXISTS patient_reactivation_sequences (
				id TEXT PRIMARY KEY,
				patient_id TEXT REFERENCES patients(id) ON DELETE CASCADE,
				step INTEGER,
				status TEXT,
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			)`,
			`CREATE TABLE IF NOT EXISTS outreach_workflows (
				id TEXT PRIMARY KEY,
				type TEXT NOT NULL UNIQUE,
				name TEXT NOT NULL,
				description TEXT,
				is_active BOOLEAN DEFAULT TRUE,
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			)`,
			`CREATE TABLE IF NOT EXISTS outreach_messages (
				id TEXT PRIMARY KEY,
				workflow_id TEXT REFERENCES outreach_workflows(id) ON DELETE SET NULL,
				patient_id TEXT REFERENCES patients(id) ON DELETE SET NULL,
				channel TEXT NOT NULL,
				direction TEXT,
				campaign_type TEXT,
				status TEXT NOT NULL,
				subject TEXT,
				content TEXT,
				opened BOOLEAN DEFAULT FALSE,
				clicked BOOLEAN DEFAULT FALSE,
				converted BOOLEAN DEFAULT FALSE,
				responded BOOLEAN DEFAULT FALSE,
				unsubscribed BOOLEAN DEFAULT FALSE,
				ai_generated BOOLEAN DEFAULT FALSE,
				automated BOOLEAN DEFAULT FALSE,
				sent_at TIMESTAMP,
				opened_at TIMESTAMP,
				clicked_at TIMESTAMP,
				converted_at TIMESTAMP,
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			)`,
			`CREATE INDEX IF NOT EXISTS idx_outreach_messages_campaign ON outreach_messages(campaign_type, sent_at)`,
			`CREATE INDEX IF NOT EXISTS idx_appointments_date ON appointments(appointment_date)`,
		},
	},
	{
		version:     MigrationV2,
		description: "Create calls, billing, metrics, and expense tables",
		statements: []string{
			`CREATE TABLE IF NOT EXISTS calls (
				id TEXT PRIMARY KEY,
				caller_phone TEXT,
				caller_name TEXT,
				direction TEXT NOT NULL,
				status TEXT NOT NULL,
				duration_seconds INTEGER,
				after_hours BOOLEAN DEFAULT FALSE,
				intent TEXT,
				urgency TEXT,
				ai_handled BOOLEAN DEFAULT FALSE,
				ai_summary TEXT,
				action_taken TEXT,
				follow_up_required BOOLEAN DEFAULT FALSE,
				follow_up_completed BOOLEAN DEFAULT FALSE,
				call_type TEXT,
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			)`,
			`CREATE INDEX IF NOT EXISTS idx_calls_created_at ON calls(created_at DESC)`,
			`CREATE TABLE IF NOT EXISTS billing_claims (
				id TEXT PRIMARY KEY,
				patient_id TEXT REFERENCES patients(id) ON DELETE SET NULL,
				claim_number TEXT NOT NULL,
				insurance_provider TEXT,
				status TEXT NOT NULL,
				procedure_codes TEXT,
				billed_amount NUMERIC(12,2) NOT NULL,
				insurance_paid NUMERIC(12,2) DEFAULT 0,
				patient_responsibility NUMERIC(12,2) DEFAULT 0,
				adjustment NUMERIC(12,2) DEFAULT 0,
				submitted_at TIMESTAMP,
				paid_at TIMESTAMP,
				denial_reason TEXT,
				aging_days INTEGER DEFAULT 0,
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			)`,
			`CREATE TABLE IF NOT EXISTS daily_metrics (
				id TEXT PRIMARY KEY,
				date DATE NOT NULL,
				new_leads INTEGER DEFAULT 0,
				leads_converted INTEGER DEFAULT 0,
				appointments_scheduled INTEGER DEFAULT 0,
				appointments_completed INTEGER DEFAULT 0,
				no_shows INTEGER DEFAULT 0,
				cancellations INTEGER DEFAULT 0,
				production NUMERIC DEFAULT 0,
				collections NUMERIC DEFAULT 0,
				claims_submitted INTEGER DEFAULT 0,
				claims_paid INTEGER DEFAULT 0,
				claims_denied INTEGER DEFAULT 0,
				ai_actions_taken INTEGER DEFAULT 0,
				ai_actions_approved INTEGER DEFAULT 0,
				avg_lead_response_seconds INTEGER,
				patient_messages_sent INTEGER DEFAULT 0,
				patient_messages_received INTEGER DEFAULT 0,
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			)`,
			`CREATE INDEX IF NOT EXISTS idx_daily_metrics_date ON daily_metrics(date)`,
			`CREATE TABLE IF NOT EXISTS monthly_expenses (
				id TEXT PRIMARY KEY,
				month DATE NOT NULL,
				label TEXT NOT NULL,
				category TEXT,
				amount NUMERIC(12,2) NOT NULL,
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			)`,
			`CREATE TABLE IF NOT EXISTS accounts_payable (
				id TEXT PRIMARY KEY,
				vendor TEXT NOT NULL,
				description TEXT,
				amount NUMERIC(12,2) NOT NULL,
				due_date DATE,
				status TEXT NOT NULL,
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			)`,
		},
	},
	{
		version:     MigrationV3,
		description: "Create provider, HR, benefits, and licensing tables",
		statements: []string{
			`CREATE TABLE IF NOT EXISTS providers (
				id TEXT PRIMARY KEY,
				first_name TEXT NOT NULL,
				last_name TEXT NOT NULL,
				title TEXT,
				specialty TEXT,
				npi_number TEXT,
				license_number TEXT,
				license_state TEXT,
				email TEXT,
				phone TEXT,
				bio TEXT,
				accepting_new_patients BOOLEAN DEFAULT TRUE,
				is_active BOOLEAN DEFAULT TRUE,
				color TEXT,
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			)`,
			`CREATE TABLE IF NOT EXISTS provider_availability (
				id TEXT PRIMARY KEY,
				provider_id TEXT NOT NULL REFERENCES providers(id) ON DELETE CASCADE,
				day_of_week INTEGER NOT NULL,
				start_time TEXT NOT NULL,
				end_time TEXT NOT NULL,
				is_available BOOLEAN DEFAULT TRUE,
				location TEXT,
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			)`,
			`CREATE TABLE IF NOT EXISTS provider_blocks (
				id TEXT PRIMARY KEY,
				provider_id TEXT NOT NULL REFERENCES providers(id) ON DELETE CASCADE,
				block_type TEXT NOT NULL,
				title TEXT,
				start_date DATE NOT NULL,
				end_date DATE NOT NULL,
				start_time TEXT,
				end_time TEXT,
				all_day BOOLEAN DEFAULT TRUE,
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			)`,
			`CREATE TABLE IF NOT EXISTS referrals (
				id TEXT PRIMARY KEY,
				patient_id TEXT REFERENCES patients(id) ON DELETE SET NULL,
				referring_provider_id TEXT REFERENCES providers(id) ON DELETE SET NULL,
				referred_to_name TEXT,
				referred_to_specialty TEXT,
				referred_to_phone TEXT,
				referred_to_fax TEXT,
				referred_to_address TEXT,
				reason TEXT,
				urgency TEXT NOT NULL,
				status TEXT NOT NULL,
				notes TEXT,
				sent_at TIMESTAMP,
				completed_at TIMESTAMP,
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			)`,
			`CREATE TABLE IF NOT EXISTS employees (
				id TEXT PRIMARY KEY,
				first_name TEXT NOT NULL,
				last_name TEXT NOT NULL,
				email TEXT,
				phone TEXT,
				role TEXT,
				hire_date DATE,
				status TEXT NOT NULL,
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			)`,
			`CREATE TABLE IF NOT EXISTS hr_documents (
				id TEXT PRIMARY KEY,
				employee_id TEXT NOT NULL REFERENCES employees(id) ON DELETE CASCADE,
				type TEXT NOT NULL,
				title TEXT NOT NULL,
				content TEXT,
				severity TEXT,
				status TEXT NOT NULL,
				created_by TEXT,
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			)`,
			`CREATE TABLE IF NOT EXISTS document_acknowledgments (
				id TEXT PRIMARY KEY,
				document_id TEXT NOT NULL REFERENCES hr_documents(id) ON DELETE CASCADE,
				employee_id TEXT NOT NULL REFERENCES employees(id) ON DELETE CASCADE,
				acknowledgment_type TEXT,
				step_label TEXT,
				typed_name TEXT,
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			)`,
			`CREATE TABLE IF NOT EXISTS benefit_enrollments (
				id TEXT PRIMARY KEY,
				employee_id TEXT NOT NULL REFERENCES employees(id) ON DELETE CASCADE,
				benefit_type TEXT NOT NULL,
				plan_name TEXT,
				carrier_name TEXT,
				policy_number TEXT,
				monthly_premium NUMERIC(12,2),
				employer_contribution NUMERIC(12,2),
				employee_contribution NUMERIC(12,2),
				coverage_tier TEXT,
				enrollment_status TEXT NOT NULL,
				effective_date DATE,
				ichra_allowance_monthly NUMERIC(12,2),
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			)`,
			`CREATE TABLE IF NOT EXISTS insurance_policies (
				id TEXT PRIMARY KEY,
				policy_type TEXT NOT NULL,
				carrier_name TEXT,
				policy_number TEXT NOT NULL UNIQUE,
				coverage_amount NUMERIC(14,2),
				deductible NUMERIC(12,2),
				annual_premium NUMERIC(12,2),
				monthly_premium NUMERIC(12,2),
				effective_date DATE,
				expiration_date DATE,
				renewal_date DATE,
				status TEXT NOT NULL,
				agent_name TEXT,
				agent_phone TEXT,
				agent_email TEXT,
				broker_company TEXT,
				auto_renew BOOLEAN DEFAULT FALSE,
				notes TEXT,
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			)`,
			`CREATE TABLE IF NOT EXISTS corporate_filings (
				id TEXT PRIMARY KEY,
				filing_type TEXT NOT NULL,
				title TEXT NOT NULL,
				filing_entity TEXT,
				jurisdiction TEXT,
				filing_number TEXT,
				status TEXT NOT NULL,
				effective_date DATE,
				expiration_date DATE,
				renewal_frequency TEXT,
				cost NUMERIC(12,2),
				responsible_party TEXT,
				notes TEXT,
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			)`,
			`CREATE TABLE IF NOT EXISTS licenses (
				id TEXT PRIMARY KEY,
				holder_type TEXT NOT NULL,
				holder_name TEXT NOT NULL,
				license_type TEXT NOT NULL,
				license_number TEXT,
				issued_by TEXT,
				issue_date DATE,
				expiration_date DATE,
				category TEXT,
				status TEXT NOT NULL,
				days_until_expiry INTEGER,
				is_required BOOLEAN DEFAULT TRUE,
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			)`,
		},
	},
	{
		version:     MigrationV4,
		description: "Create seed_runs history table",
		statements: []string{
			`CREATE TABLE IF NOT EXISTS seed_runs (
				id TEXT PRIMARY KEY,
				module TEXT NOT NULL,
				state TEXT NOT NULL,
				success BOOLEAN NOT NULL,
				total_inserted INTEGER DEFAULT 0,
				error_count INTEGER DEFAULT 0,
				errors TEXT,
				duration_ms INTEGER,
				started_at TIMESTAMP NOT NULL,
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			)`,
			`CREATE INDEX IF NOT EXISTS idx_seed_runs_started_at ON seed_runs(started_at DESC)`,
		},
	},
}

// Tables lists every seeded table in creation order.
func Tables() []string {
	return []string{
		"patients", "appointments", "leads", "ai_actions", "insurance_verifications",
		"treatment_plans", "lead_nurture_sequences", "patient_reactivation_sequences",
		"outreach_workflows", "outreach_messages",
		"calls", "billing_claims", "daily_metrics", "monthly_expenses", "accounts_payable",
		"providers", "provider_availability", "provider_blocks", "referrals",
		"employees", "hr_documents", "document_acknowledgments",
		"benefit_enrollments", "insurance_policies", "corporate_filings", "licenses",
	}
}
