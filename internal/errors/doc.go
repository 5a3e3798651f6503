// Package errors provides structured errors for the npc-tracker project.
//
// Errors carry a code, a user-facing message, an optional cause and
// metadata:
//
//	err := errors.NotFound("character not found").
//	    WithMeta("character_id", id)
//
// Wrapping keeps the code of a wrapped *Error and defaults to Internal for
// anything else:
//
//	if err := kv.Set(ctx, key, value); err != nil {
//	    return errors.Wrapf(err, "failed to write %s", key)
//	}
//
// # Where errors come from
//
// Record edits never fail. Malformed numbers degrade to defaults, missing
// targets are no-ops, and refused deletions are silent. Errors only come
// from the durable store (reads, writes, connectivity) and from invalid
// configuration, so callers can tell a storage problem apart from a
// harmless no-op.
//
// # Validation
//
//	vb := errors.NewValidationBuilder()
//	if cfg.Repository == nil {
//	    vb.RequiredField("Repository")
//	}
//	if err := vb.Build(); err != nil {
//	    return err
//	}
package errors
