package vpipe

import "fmt"

// ValidationError reports bad caller input discovered before any GPU
// work is issued. Render fails immediately with no side effects.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return fmt.Sprintf("vpipe: validation: %s", e.Reason) }

func validationErrorf(format string, args ...any) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// CapabilityError reports a runtime discovery that a GPU capability is
// unsupported (non-blendable target, non-storable compute target, ...).
// The corresponding disable flag is set permanently and the pipeline
// continues with degraded output; a pipeline stage returns
// CapabilityError only when the degradation made the frame
// unrenderable, and Render then logs it and returns false.
type CapabilityError struct {
	Feature string
	Reason  string
}

func (e *CapabilityError) Error() string {
	return fmt.Sprintf("vpipe: capability %q unavailable: %s", e.Feature, e.Reason)
}

func capabilityErrorf(feature, format string, args ...any) *CapabilityError {
	return &CapabilityError{Feature: feature, Reason: fmt.Sprintf(format, args...)}
}

// DispatchError reports a shader dispatch that returned failure
// (allocation, compilation). The in-flight shader is aborted; the
// pipeline may retry via a direct-sample fallback before giving up.
type DispatchError struct {
	Stage  string
	Reason string
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("vpipe: dispatch failed in stage %q: %s", e.Stage, e.Reason)
}

func dispatchErrorf(stage, format string, args ...any) *DispatchError {
	return &DispatchError{Stage: stage, Reason: fmt.Sprintf(format, args...)}
}

// HookError reports a user hook that returned failure or attempted to
// resize the in-flight image at a non-resizable stage. Once returned,
// the renderer's disable_hooks flag is set for the renderer's lifetime.
type HookError struct {
	Stage  string
	Reason string
}

func (e *HookError) Error() string {
	return fmt.Sprintf("vpipe: hook contract violation at stage %q: %s", e.Stage, e.Reason)
}

func hookErrorf(stage, format string, args ...any) *HookError {
	return &HookError{Stage: stage, Reason: fmt.Sprintf(format, args...)}
}
