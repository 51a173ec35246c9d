// Package pages holds the demo steps run by the stepform CLI: two forms
// with one required field each and a summary of everything entered.
//
// Every page is generic over the step key so the same pages serve both an
// index-keyed wizard (Sequence) and a name-keyed one (Named).
package pages
