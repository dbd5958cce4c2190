// Package model provides the base entity type, the lifecycle mixins (uuid,
// timestamps, soft delete, deactivation), and capability introspection over
// the mixins an entity type embeds.
package model
