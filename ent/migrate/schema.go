// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AffiliatesColumns holds the columns for the "affiliates" table.
	AffiliatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "inactive", "suspended"}, Default: "active"},
		{Name: "subscription_pct", Type: field.TypeFloat64, Nullable: true},
		{Name: "order_pct", Type: field.TypeFloat64, Nullable: true},
		{Name: "parent_subscription_pct", Type: field.TypeFloat64, Nullable: true},
		{Name: "parent_order_pct", Type: field.TypeFloat64, Nullable: true},
		{Name: "total_clicks", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "parent_id", Type: field.TypeInt, Nullable: true},
		{Name: "user_id", Type: field.TypeInt, Unique: true},
	}
	// AffiliatesTable holds the schema information for the "affiliates" table.
	AffiliatesTable = &schema.Table{
		Name:       "affiliates",
		Columns:    AffiliatesColumns,
		PrimaryKey: []*schema.Column{AffiliatesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "affiliates_affiliates_children",
				Columns:    []*schema.Column{AffiliatesColumns[9]},
				RefColumns: []*schema.Column{AffiliatesColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "affiliates_users_affiliate",
				Columns:    []*schema.Column{AffiliatesColumns[10]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "affiliate_user_id",
				Unique:  true,
				Columns: []*schema.Column{AffiliatesColumns[10]},
			},
			{
				Name:    "affiliate_parent_id",
				Unique:  false,
				Columns: []*schema.Column{AffiliatesColumns[9]},
			},
			{
				Name:    "affiliate_status",
				Unique:  false,
				Columns: []*schema.Column{AffiliatesColumns[1]},
			},
		},
	}
	// AttributionsColumns holds the columns for the "attributions" table.
	AttributionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"user_signup", "business_signup"}},
		{Name: "source", Type: field.TypeEnum, Enums: []string{"referral_link"}, Default: "referral_link"},
		{Name: "starts_at", Type: field.TypeTime},
		{Name: "ends_at", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "affiliate_id", Type: field.TypeInt},
		{Name: "user_id", Type: field.TypeInt},
	}
	// AttributionsTable holds the schema information for the "attributions" table.
	AttributionsTable = &schema.Table{
		Name:       "attributions",
		Columns:    AttributionsColumns,
		PrimaryKey: []*schema.Column{AttributionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "attributions_affiliates_attributions",
				Columns:    []*schema.Column{AttributionsColumns[6]},
				RefColumns: []*schema.Column{AffiliatesColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "attributions_users_attributions",
				Columns:    []*schema.Column{AttributionsColumns[7]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "attribution_user_id_type",
				Unique:  false,
				Columns: []*schema.Column{AttributionsColumns[7], AttributionsColumns[1]},
			},
			{
				Name:    "attribution_affiliate_id",
				Unique:  false,
				Columns: []*schema.Column{AttributionsColumns[6]},
			},
			{
				Name:    "attribution_ends_at",
				Unique:  false,
				Columns: []*schema.Column{AttributionsColumns[4]},
			},
		},
	}
	// BusinessSubscriptionsColumns holds the columns for the "business_subscriptions" table.
	BusinessSubscriptionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "stripe_subscription_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeInt},
		{Name: "fee_cents", Type: field.TypeInt64},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "canceled", "past_due", "unpaid"}, Default: "active"},
		{Name: "ends_at", Type: field.TypeTime},
		{Name: "current_period_start", Type: field.TypeTime, Nullable: true},
		{Name: "current_period_end", Type: field.TypeTime, Nullable: true},
		{Name: "canceled_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "attribution_id", Type: field.TypeInt, Nullable: true},
		{Name: "promo_code_id", Type: field.TypeInt, Nullable: true},
	}
	// BusinessSubscriptionsTable holds the schema information for the "business_subscriptions" table.
	BusinessSubscriptionsTable = &schema.Table{
		Name:       "business_subscriptions",
		Columns:    BusinessSubscriptionsColumns,
		PrimaryKey: []*schema.Column{BusinessSubscriptionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "business_subscriptions_attributions_subscriptions",
				Columns:    []*schema.Column{BusinessSubscriptionsColumns[11]},
				RefColumns: []*schema.Column{AttributionsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "business_subscriptions_promo_codes_subscriptions",
				Columns:    []*schema.Column{BusinessSubscriptionsColumns[12]},
				RefColumns: []*schema.Column{PromoCodesColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "businesssubscription_stripe_subscription_id",
				Unique:  true,
				Columns: []*schema.Column{BusinessSubscriptionsColumns[1]},
			},
			{
				Name:    "businesssubscription_user_id",
				Unique:  false,
				Columns: []*schema.Column{BusinessSubscriptionsColumns[2]},
			},
			{
				Name:    "businesssubscription_status",
				Unique:  false,
				Columns: []*schema.Column{BusinessSubscriptionsColumns[4]},
			},
		},
	}
	// LedgerEntriesColumns holds the columns for the "ledger_entries" table.
	LedgerEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "event_id", Type: field.TypeString, Unique: true},
		{Name: "event_type", Type: field.TypeEnum, Enums: []string{"invoice_paid", "order_paid", "refund", "chargeback"}},
		{Name: "amount_cents", Type: field.TypeInt64},
		{Name: "base_amount_cents", Type: field.TypeInt64},
		{Name: "currency", Type: field.TypeString, Size: 3, Default: "EUR"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "available", "reversed"}, Default: "pending"},
		{Name: "available_at", Type: field.TypeTime, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "affiliate_id", Type: field.TypeInt},
		{Name: "subscription_id", Type: field.TypeInt, Nullable: true},
	}
	// LedgerEntriesTable holds the schema information for the "ledger_entries" table.
	LedgerEntriesTable = &schema.Table{
		Name:       "ledger_entries",
		Columns:    LedgerEntriesColumns,
		PrimaryKey: []*schema.Column{LedgerEntriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "ledger_entries_affiliates_ledger_entries",
				Columns:    []*schema.Column{LedgerEntriesColumns[10]},
				RefColumns: []*schema.Column{AffiliatesColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "ledger_entries_business_subscriptions_ledger_entries",
				Columns:    []*schema.Column{LedgerEntriesColumns[11]},
				RefColumns: []*schema.Column{BusinessSubscriptionsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "ledgerentry_event_id",
				Unique:  true,
				Columns: []*schema.Column{LedgerEntriesColumns[1]},
			},
			{
				Name:    "ledgerentry_affiliate_id_status",
				Unique:  false,
				Columns: []*schema.Column{LedgerEntriesColumns[10], LedgerEntriesColumns[6]},
			},
			{
				Name:    "ledgerentry_status_available_at",
				Unique:  false,
				Columns: []*schema.Column{LedgerEntriesColumns[6], LedgerEntriesColumns[7]},
			},
			{
				Name:    "ledgerentry_created_at",
				Unique:  false,
				Columns: []*schema.Column{LedgerEntriesColumns[9]},
			},
		},
	}
	// PromoCodesColumns holds the columns for the "promo_codes" table.
	PromoCodesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "code", Type: field.TypeString, Unique: true, Size: 32},
		{Name: "discount_share_pct", Type: field.TypeFloat64},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "affiliate_id", Type: field.TypeInt},
	}
	// PromoCodesTable holds the schema information for the "promo_codes" table.
	PromoCodesTable = &schema.Table{
		Name:       "promo_codes",
		Columns:    PromoCodesColumns,
		PrimaryKey: []*schema.Column{PromoCodesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "promo_codes_affiliates_promo_codes",
				Columns:    []*schema.Column{PromoCodesColumns[5]},
				RefColumns: []*schema.Column{AffiliatesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "promocode_code",
				Unique:  true,
				Columns: []*schema.Column{PromoCodesColumns[1]},
			},
			{
				Name:    "promocode_affiliate_id",
				Unique:  false,
				Columns: []*schema.Column{PromoCodesColumns[5]},
			},
		},
	}
	// ReferralClicksColumns holds the columns for the "referral_clicks" table.
	ReferralClicksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "ip_address", Type: field.TypeString, Nullable: true},
		{Name: "user_agent", Type: field.TypeString, Nullable: true},
		{Name: "referrer", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "link_id", Type: field.TypeInt},
	}
	// ReferralClicksTable holds the schema information for the "referral_clicks" table.
	ReferralClicksTable = &schema.Table{
		Name:       "referral_clicks",
		Columns:    ReferralClicksColumns,
		PrimaryKey: []*schema.Column{ReferralClicksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "referral_clicks_referral_links_clicks",
				Columns:    []*schema.Column{ReferralClicksColumns[5]},
				RefColumns: []*schema.Column{ReferralLinksColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "referralclick_link_id",
				Unique:  false,
				Columns: []*schema.Column{ReferralClicksColumns[5]},
			},
			{
				Name:    "referralclick_created_at",
				Unique:  false,
				Columns: []*schema.Column{ReferralClicksColumns[4]},
			},
		},
	}
	// ReferralLinksColumns holds the columns for the "referral_links" table.
	ReferralLinksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "code", Type: field.TypeString, Unique: true, Size: 32},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "affiliate_id", Type: field.TypeInt},
	}
	// ReferralLinksTable holds the schema information for the "referral_links" table.
	ReferralLinksTable = &schema.Table{
		Name:       "referral_links",
		Columns:    ReferralLinksColumns,
		PrimaryKey: []*schema.Column{ReferralLinksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "referral_links_affiliates_links",
				Columns:    []*schema.Column{ReferralLinksColumns[4]},
				RefColumns: []*schema.Column{AffiliatesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "referrallink_code",
				Unique:  true,
				Columns: []*schema.Column{ReferralLinksColumns[1]},
			},
			{
				Name:    "referrallink_affiliate_id",
				Unique:  false,
				Columns: []*schema.Column{ReferralLinksColumns[4]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "is_business", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_email",
				Unique:  true,
				Columns: []*schema.Column{UsersColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AffiliatesTable,
		AttributionsTable,
		BusinessSubscriptionsTable,
		LedgerEntriesTable,
		PromoCodesTable,
		ReferralClicksTable,
		ReferralLinksTable,
		UsersTable,
	}
)

func init() {
	AffiliatesTable.ForeignKeys[0].RefTable = AffiliatesTable
	AffiliatesTable.ForeignKeys[1].RefTable = UsersTable
	AttributionsTable.ForeignKeys[0].RefTable = AffiliatesTable
	AttributionsTable.ForeignKeys[1].RefTable = UsersTable
	BusinessSubscriptionsTable.ForeignKeys[0].RefTable = AttributionsTable
	BusinessSubscriptionsTable.ForeignKeys[1].RefTable = PromoCodesTable
	LedgerEntriesTable.ForeignKeys[0].RefTable = AffiliatesTable
	LedgerEntriesTable.ForeignKeys[1].RefTable = BusinessSubscriptionsTable
	PromoCodesTable.ForeignKeys[0].RefTable = AffiliatesTable
	ReferralClicksTable.ForeignKeys[0].RefTable = ReferralLinksTable
	ReferralLinksTable.ForeignKeys[0].RefTable = AffiliatesTable
}
