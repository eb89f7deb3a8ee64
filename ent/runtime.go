// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/homecheff/affiliates/ent/affiliate"
	"github.com/homecheff/affiliates/ent/attribution"
	"github.com/homecheff/affiliates/ent/businesssubscription"
	"github.com/homecheff/affiliates/ent/ledgerentry"
	"github.com/homecheff/affiliates/ent/promocode"
	"github.com/homecheff/affiliates/ent/referralclick"
	"github.com/homecheff/affiliates/ent/referrallink"
	"github.com/homecheff/affiliates/ent/schema"
	"github.com/homecheff/affiliates/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	affiliateFields := schema.Affiliate{}.Fields()
	_ = affiliateFields
	// affiliateDescTotalClicks is the schema descriptor for total_clicks field.
	affiliateDescTotalClicks := affiliateFields[7].Descriptor()
	// affiliate.DefaultTotalClicks holds the default value on creation for the total_clicks field.
	affiliate.DefaultTotalClicks = affiliateDescTotalClicks.Default.(int)
	// affiliateDescCreatedAt is the schema descriptor for created_at field.
	affiliateDescCreatedAt := affiliateFields[8].Descriptor()
	// affiliate.DefaultCreatedAt holds the default value on creation for the created_at field.
	affiliate.DefaultCreatedAt = affiliateDescCreatedAt.Default.(func() time.Time)
	// affiliateDescUpdatedAt is the schema descriptor for updated_at field.
	affiliateDescUpdatedAt := affiliateFields[9].Descriptor()
	// affiliate.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	affiliate.DefaultUpdatedAt = affiliateDescUpdatedAt.Default.(func() time.Time)
	// affiliate.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	affiliate.UpdateDefaultUpdatedAt = affiliateDescUpdatedAt.UpdateDefault.(func() time.Time)
	attributionFields := schema.Attribution{}.Fields()
	_ = attributionFields
	// attributionDescCreatedAt is the schema descriptor for created_at field.
	attributionDescCreatedAt := attributionFields[6].Descriptor()
	// attribution.DefaultCreatedAt holds the default value on creation for the created_at field.
	attribution.DefaultCreatedAt = attributionDescCreatedAt.Default.(func() time.Time)
	businesssubscriptionFields := schema.BusinessSubscription{}.Fields()
	_ = businesssubscriptionFields
	// businesssubscriptionDescStripeSubscriptionID is the schema descriptor for stripe_subscription_id field.
	businesssubscriptionDescStripeSubscriptionID := businesssubscriptionFields[0].Descriptor()
	// businesssubscription.StripeSubscriptionIDValidator is a validator for the "stripe_subscription_id" field. It is called by the builders before save.
	businesssubscription.StripeSubscriptionIDValidator = businesssubscriptionDescStripeSubscriptionID.Validators[0].(func(string) error)
	// businesssubscriptionDescFeeCents is the schema descriptor for fee_cents field.
	businesssubscriptionDescFeeCents := businesssubscriptionFields[4].Descriptor()
	// businesssubscription.FeeCentsValidator is a validator for the "fee_cents" field. It is called by the builders before save.
	businesssubscription.FeeCentsValidator = businesssubscriptionDescFeeCents.Validators[0].(func(int64) error)
	// businesssubscriptionDescCreatedAt is the schema descriptor for created_at field.
	businesssubscriptionDescCreatedAt := businesssubscriptionFields[10].Descriptor()
	// businesssubscription.DefaultCreatedAt holds the default value on creation for the created_at field.
	businesssubscription.DefaultCreatedAt = businesssubscriptionDescCreatedAt.Default.(func() time.Time)
	// businesssubscriptionDescUpdatedAt is the schema descriptor for updated_at field.
	businesssubscriptionDescUpdatedAt := businesssubscriptionFields[11].Descriptor()
	// businesssubscription.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	businesssubscription.DefaultUpdatedAt = businesssubscriptionDescUpdatedAt.Default.(func() time.Time)
	// businesssubscription.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	businesssubscription.UpdateDefaultUpdatedAt = businesssubscriptionDescUpdatedAt.UpdateDefault.(func() time.Time)
	ledgerentryFields := schema.LedgerEntry{}.Fields()
	_ = ledgerentryFields
	// ledgerentryDescEventID is the schema descriptor for event_id field.
	ledgerentryDescEventID := ledgerentryFields[0].Descriptor()
	// ledgerentry.EventIDValidator is a validator for the "event_id" field. It is called by the builders before save.
	ledgerentry.EventIDValidator = ledgerentryDescEventID.Validators[0].(func(string) error)
	// ledgerentryDescCurrency is the schema descriptor for currency field.
	ledgerentryDescCurrency := ledgerentryFields[5].Descriptor()
	// ledgerentry.DefaultCurrency holds the default value on creation for the currency field.
	ledgerentry.DefaultCurrency = ledgerentryDescCurrency.Default.(string)
	// ledgerentry.CurrencyValidator is a validator for the "currency" field. It is called by the builders before save.
	ledgerentry.CurrencyValidator = ledgerentryDescCurrency.Validators[0].(func(string) error)
	// ledgerentryDescCreatedAt is the schema descriptor for created_at field.
	ledgerentryDescCreatedAt := ledgerentryFields[10].Descriptor()
	// ledgerentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	ledgerentry.DefaultCreatedAt = ledgerentryDescCreatedAt.Default.(func() time.Time)
	promocodeFields := schema.PromoCode{}.Fields()
	_ = promocodeFields
	// promocodeDescCode is the schema descriptor for code field.
	promocodeDescCode := promocodeFields[1].Descriptor()
	// promocode.CodeValidator is a validator for the "code" field. It is called by the builders before save.
	promocode.CodeValidator = func() func(string) error {
		validators := promocodeDescCode.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(code string) error {
			for _, fn := range fns {
				if err := fn(code); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// promocodeDescDiscountSharePct is the schema descriptor for discount_share_pct field.
	promocodeDescDiscountSharePct := promocodeFields[2].Descriptor()
	// promocode.DiscountSharePctValidator is a validator for the "discount_share_pct" field. It is called by the builders before save.
	promocode.DiscountSharePctValidator = func() func(float64) error {
		validators := promocodeDescDiscountSharePct.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(discount_share_pct float64) error {
			for _, fn := range fns {
				if err := fn(discount_share_pct); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// promocodeDescActive is the schema descriptor for active field.
	promocodeDescActive := promocodeFields[3].Descriptor()
	// promocode.DefaultActive holds the default value on creation for the active field.
	promocode.DefaultActive = promocodeDescActive.Default.(bool)
	// promocodeDescCreatedAt is the schema descriptor for created_at field.
	promocodeDescCreatedAt := promocodeFields[4].Descriptor()
	// promocode.DefaultCreatedAt holds the default value on creation for the created_at field.
	promocode.DefaultCreatedAt = promocodeDescCreatedAt.Default.(func() time.Time)
	referralclickFields := schema.ReferralClick{}.Fields()
	_ = referralclickFields
	// referralclickDescCreatedAt is the schema descriptor for created_at field.
	referralclickDescCreatedAt := referralclickFields[4].Descriptor()
	// referralclick.DefaultCreatedAt holds the default value on creation for the created_at field.
	referralclick.DefaultCreatedAt = referralclickDescCreatedAt.Default.(func() time.Time)
	referrallinkFields := schema.ReferralLink{}.Fields()
	_ = referrallinkFields
	// referrallinkDescCode is the schema descriptor for code field.
	referrallinkDescCode := referrallinkFields[1].Descriptor()
	// referrallink.CodeValidator is a validator for the "code" field. It is called by the builders before save.
	referrallink.CodeValidator = func() func(string) error {
		validators := referrallinkDescCode.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(code string) error {
			for _, fn := range fns {
				if err := fn(code); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// referrallinkDescActive is the schema descriptor for active field.
	referrallinkDescActive := referrallinkFields[2].Descriptor()
	// referrallink.DefaultActive holds the default value on creation for the active field.
	referrallink.DefaultActive = referrallinkDescActive.Default.(bool)
	// referrallinkDescCreatedAt is the schema descriptor for created_at field.
	referrallinkDescCreatedAt := referrallinkFields[3].Descriptor()
	// referrallink.DefaultCreatedAt holds the default value on creation for the created_at field.
	referrallink.DefaultCreatedAt = referrallinkDescCreatedAt.Default.(func() time.Time)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescName is the schema descriptor for name field.
	userDescName := userFields[0].Descriptor()
	// user.NameValidator is a validator for the "name" field. It is called by the builders before save.
	user.NameValidator = userDescName.Validators[0].(func(string) error)
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[1].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescIsBusiness is the schema descriptor for is_business field.
	userDescIsBusiness := userFields[2].Descriptor()
	// user.DefaultIsBusiness holds the default value on creation for the is_business field.
	user.DefaultIsBusiness = userDescIsBusiness.Default.(bool)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[3].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
}
