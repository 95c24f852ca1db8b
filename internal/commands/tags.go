package commands

import (
	"github.com/arthur-debert/padz/internal/storage"
	"github.com/arthur-debert/padz/internal/tags"
	"github.com/arthur-debert/padz/internal/types"
)

// ListTags lists the scope's tag registry.
func ListTags(store storage.DataStore, scope types.Scope) (*CmdResult, error) {
	registry, err := store.LoadTags(scope)
	if err != nil {
		return nil, err
	}

	result := &CmdResult{}
	if len(registry) == 0 {
		result.AddMessage(Info("No tags defined"))
		return result, nil
	}

	result.AddMessage(Info("%d tag%s defined", len(registry), plural(len(registry))))
	for _, tag := range registry {
		result.AddMessage(Info("  %s", tag.Name))
	}
	return result, nil
}

// CreateTag adds a new name to the registry. The name must pass the tag
// grammar and not already exist.
func CreateTag(store storage.DataStore, scope types.Scope, name string) (*CmdResult, error) {
	if err := tags.ValidateName(name); err != nil {
		return nil, &ValidationError{Message: err.Error()}
	}

	registry, err := store.LoadTags(scope)
	if err != nil {
		return nil, err
	}
	for _, tag := range registry {
		if tag.Name == name {
			return nil, &ConflictError{Message: "Tag '" + name + "' already exists"}
		}
	}

	registry = append(registry, types.NewTagEntry(name))
	if err := store.SaveTags(scope, registry); err != nil {
		return nil, err
	}

	result := &CmdResult{}
	result.AddMessage(Success("Created tag '%s'", name))
	return result, nil
}

// DeleteTag removes a name from the registry and cascades: the tag is
// stripped from every active pad that lists it.
func DeleteTag(store storage.DataStore, scope types.Scope, name string) (*CmdResult, error) {
	registry, err := store.LoadTags(scope)
	if err != nil {
		return nil, err
	}

	kept := registry[:0]
	for _, tag := range registry {
		if tag.Name != name {
			kept = append(kept, tag)
		}
	}
	if len(kept) == len(registry) {
		return nil, &ValidationError{Message: "Tag '" + name + "' not found"}
	}
	if err := store.SaveTags(scope, kept); err != nil {
		return nil, err
	}

	pads, err := store.ListPads(scope, types.BucketActive)
	if err != nil {
		return nil, err
	}
	affected := 0
	for i := range pads {
		pad := &pads[i]
		if !pad.Metadata.HasTag(name) {
			continue
		}
		filtered := pad.Metadata.Tags[:0]
		for _, t := range pad.Metadata.Tags {
			if t != name {
				filtered = append(filtered, t)
			}
		}
		pad.Metadata.Tags = filtered
		if err := store.SavePad(scope, types.BucketActive, pad); err != nil {
			return nil, err
		}
		affected++
	}

	result := &CmdResult{}
	result.AddMessage(Success("Deleted tag '%s'", name))
	if affected > 0 {
		result.AddMessage(Info("Removed from %d pad%s", affected, plural(affected)))
	}
	return result, nil
}

// RenameTag renames a registry entry and updates every active pad that
// listed the old name, keeping the tag's position in each pad's list.
func RenameTag(store storage.DataStore, scope types.Scope, oldName, newName string) (*CmdResult, error) {
	if err := tags.ValidateName(newName); err != nil {
		return nil, &ValidationError{Message: err.Error()}
	}

	registry, err := store.LoadTags(scope)
	if err != nil {
		return nil, err
	}

	pos := -1
	for i, tag := range registry {
		if tag.Name == oldName {
			pos = i
		}
		if tag.Name == newName {
			return nil, &ConflictError{Message: "Tag '" + newName + "' already exists"}
		}
	}
	if pos < 0 {
		return nil, &ValidationError{Message: "Tag '" + oldName + "' not found"}
	}

	registry[pos].Name = newName
	if err := store.SaveTags(scope, registry); err != nil {
		return nil, err
	}

	pads, err := store.ListPads(scope, types.BucketActive)
	if err != nil {
		return nil, err
	}
	affected := 0
	for i := range pads {
		pad := &pads[i]
		for j, t := range pad.Metadata.Tags {
			if t == oldName {
				pad.Metadata.Tags[j] = newName
				if err := store.SavePad(scope, types.BucketActive, pad); err != nil {
					return nil, err
				}
				affected++
				break
			}
		}
	}

	result := &CmdResult{}
	result.AddMessage(Success("Renamed tag '%s' to '%s'", oldName, newName))
	if affected > 0 {
		result.AddMessage(Info("Updated %d pad%s", affected, plural(affected)))
	}
	return result, nil
}

// EnsureTag creates the tag if absent. Idempotent; still validates.
func EnsureTag(store storage.DataStore, scope types.Scope, name string) error {
	if err := tags.ValidateName(name); err != nil {
		return &ValidationError{Message: err.Error()}
	}
	registry, err := store.LoadTags(scope)
	if err != nil {
		return err
	}
	for _, tag := range registry {
		if tag.Name == name {
			return nil
		}
	}
	registry = append(registry, types.NewTagEntry(name))
	return store.SaveTags(scope, registry)
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
