// Package actions provides the orchestration layer the front end calls.
//
// Each action corresponds to one repository or license operation. Actions
// validate nothing themselves: preconditions live in the git and license
// packages. What actions own is sequencing, structured event logging, and
// converting every expected failure into a Result the menu and CLI can
// display without ever seeing a raw fault.
package actions
