// Package repository handles all interactions with stored data.
//
// Records live in process memory for the lifetime of the process. Each
// repository owns its state and guards it with its own lock, so the service
// layer never touches storage directly.
package repository
