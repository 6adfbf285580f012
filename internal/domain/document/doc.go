// Package document holds the core vocabulary of the document
// generation pipeline: document kinds, locales, paper profiles, the
// typed Record model fed into the template engine, and the Template
// entity with its presentation layout.
package document
