// Package wordinfo looks up lexical information for a single English word:
// meanings grouped by part of speech, synonyms, antonyms and parts of speech.
// Data comes from live dictionary and thesaurus pages, with a bundled offline
// dataset used when the live source cannot be reached.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, rod/).
package wordinfo
