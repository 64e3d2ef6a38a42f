// Package wizard implements the interactive prompts for fusionboot.
//
// Prompts are built with charmbracelet/huh. Accessible mode renders them as
// plain line prompts for screen readers and terminals that cannot draw forms.
package wizard
