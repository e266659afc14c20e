// Package language maps ISO 639 codes and English language names to a single
// display name, so session languages typed as "es", "spa" or "Spanish" all
// stamp the same initial into an intake cell.
package language
