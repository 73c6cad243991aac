// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/lbeckmann/cardvault/db/ent/schema"
	"github.com/lbeckmann/cardvault/gen/ent/cardscan"
	"github.com/lbeckmann/cardvault/gen/ent/contact"
	"github.com/lbeckmann/cardvault/gen/ent/creditentry"
	"github.com/lbeckmann/cardvault/gen/ent/extractjob"
	"github.com/lbeckmann/cardvault/gen/ent/profile"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	cardscanFields := schema.CardScan{}.Fields()
	_ = cardscanFields
	// cardscanDescSource is the schema descriptor for source field.
	cardscanDescSource := cardscanFields[3].Descriptor()
	// cardscan.SourceValidator is a validator for the "source" field. It is called by the builders before save.
	cardscan.SourceValidator = func() func(string) error {
		validators := cardscanDescSource.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(source string) error {
			for _, fn := range fns {
				if err := fn(source); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// cardscanDescContentHash is the schema descriptor for content_hash field.
	cardscanDescContentHash := cardscanFields[6].Descriptor()
	// cardscan.ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	cardscan.ContentHashValidator = cardscanDescContentHash.Validators[0].(func([]byte) error)
	// cardscanDescCapturedAt is the schema descriptor for captured_at field.
	cardscanDescCapturedAt := cardscanFields[7].Descriptor()
	// cardscan.DefaultCapturedAt holds the default value on creation for the captured_at field.
	cardscan.DefaultCapturedAt = cardscanDescCapturedAt.Default.(func() time.Time)
	// cardscanDescID is the schema descriptor for id field.
	cardscanDescID := cardscanFields[0].Descriptor()
	// cardscan.DefaultID holds the default value on creation for the id field.
	cardscan.DefaultID = cardscanDescID.Default.(func() uuid.UUID)
	contactFields := schema.Contact{}.Fields()
	_ = contactFields
	// contactDescOutcome is the schema descriptor for outcome field.
	contactDescOutcome := contactFields[9].Descriptor()
	// contact.OutcomeValidator is a validator for the "outcome" field. It is called by the builders before save.
	contact.OutcomeValidator = contactDescOutcome.Validators[0].(func(string) error)
	// contactDescCreatedAt is the schema descriptor for created_at field.
	contactDescCreatedAt := contactFields[10].Descriptor()
	// contact.DefaultCreatedAt holds the default value on creation for the created_at field.
	contact.DefaultCreatedAt = contactDescCreatedAt.Default.(func() time.Time)
	// contactDescUpdatedAt is the schema descriptor for updated_at field.
	contactDescUpdatedAt := contactFields[11].Descriptor()
	// contact.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	contact.DefaultUpdatedAt = contactDescUpdatedAt.Default.(func() time.Time)
	// contact.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	contact.UpdateDefaultUpdatedAt = contactDescUpdatedAt.UpdateDefault.(func() time.Time)
	// contactDescID is the schema descriptor for id field.
	contactDescID := contactFields[0].Descriptor()
	// contact.DefaultID holds the default value on creation for the id field.
	contact.DefaultID = contactDescID.Default.(func() uuid.UUID)
	creditentryFields := schema.CreditEntry{}.Fields()
	_ = creditentryFields
	// creditentryDescReason is the schema descriptor for reason field.
	creditentryDescReason := creditentryFields[4].Descriptor()
	// creditentry.ReasonValidator is a validator for the "reason" field. It is called by the builders before save.
	creditentry.ReasonValidator = creditentryDescReason.Validators[0].(func(string) error)
	// creditentryDescCreatedAt is the schema descriptor for created_at field.
	creditentryDescCreatedAt := creditentryFields[5].Descriptor()
	// creditentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	creditentry.DefaultCreatedAt = creditentryDescCreatedAt.Default.(func() time.Time)
	// creditentryDescID is the schema descriptor for id field.
	creditentryDescID := creditentryFields[0].Descriptor()
	// creditentry.DefaultID holds the default value on creation for the id field.
	creditentry.DefaultID = creditentryDescID.Default.(func() uuid.UUID)
	extractjobFields := schema.ExtractJob{}.Fields()
	_ = extractjobFields
	// extractjobDescStartedAt is the schema descriptor for started_at field.
	extractjobDescStartedAt := extractjobFields[4].Descriptor()
	// extractjob.DefaultStartedAt holds the default value on creation for the started_at field.
	extractjob.DefaultStartedAt = extractjobDescStartedAt.Default.(func() time.Time)
	// extractjobDescLlmUsed is the schema descriptor for llm_used field.
	extractjobDescLlmUsed := extractjobFields[8].Descriptor()
	// extractjob.DefaultLlmUsed holds the default value on creation for the llm_used field.
	extractjob.DefaultLlmUsed = extractjobDescLlmUsed.Default.(bool)
	// extractjobDescID is the schema descriptor for id field.
	extractjobDescID := extractjobFields[0].Descriptor()
	// extractjob.DefaultID holds the default value on creation for the id field.
	extractjob.DefaultID = extractjobDescID.Default.(func() uuid.UUID)
	profileFields := schema.Profile{}.Fields()
	_ = profileFields
	// profileDescName is the schema descriptor for name field.
	profileDescName := profileFields[1].Descriptor()
	// profile.NameValidator is a validator for the "name" field. It is called by the builders before save.
	profile.NameValidator = profileDescName.Validators[0].(func(string) error)
	// profileDescLocale is the schema descriptor for locale field.
	profileDescLocale := profileFields[2].Descriptor()
	// profile.LocaleValidator is a validator for the "locale" field. It is called by the builders before save.
	profile.LocaleValidator = func() func(string) error {
		validators := profileDescLocale.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
			validators[2].(func(string) error),
		}
		return func(locale string) error {
			for _, fn := range fns {
				if err := fn(locale); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// profileDescCreatedAt is the schema descriptor for created_at field.
	profileDescCreatedAt := profileFields[3].Descriptor()
	// profile.DefaultCreatedAt holds the default value on creation for the created_at field.
	profile.DefaultCreatedAt = profileDescCreatedAt.Default.(func() time.Time)
	// profileDescUpdatedAt is the schema descriptor for updated_at field.
	profileDescUpdatedAt := profileFields[4].Descriptor()
	// profile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	profile.DefaultUpdatedAt = profileDescUpdatedAt.Default.(func() time.Time)
	// profile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	profile.UpdateDefaultUpdatedAt = profileDescUpdatedAt.UpdateDefault.(func() time.Time)
	// profileDescID is the schema descriptor for id field.
	profileDescID := profileFields[0].Descriptor()
	// profile.DefaultID holds the default value on creation for the id field.
	profile.DefaultID = profileDescID.Default.(func() uuid.UUID)
}
