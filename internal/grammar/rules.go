package grammar

import (
	"fmt"
	"strings"
)

// NounDeclensionRules returns the general ending patterns for the three
// noun declension classes.
func NounDeclensionRules() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-16s %-18s %-14s %-16s %s\n", "Case", "1st declension", "2nd declension", "3rd declension", "Plural")
	rows := [][5]string{
		{"Nominative", "-/-ь, -о/-е", "-а/-я", "-ь", "-ы (-и)/-а (-я)"},
		{"Accusative", "= Nominative", "-у/-ю", "= Nominative", "= Nominative"},
		{"Genitive", "-а/-я", "-ы/-и", "-и", "-ов/-ей/—"},
		{"Dative", "-у/-ю", "-е (-и)", "-и", "-ам/-ям"},
		{"Prepositional", "-е", "-е (-и)", "-и", "-ах/-ях"},
	}
	for _, row := range rows {
		fmt.Fprintf(&b, "%-16s %-18s %-14s %-16s %s\n", row[0], row[1], row[2], row[3], row[4])
	}
	b.WriteString(`
1st declension: masculine nouns ending in a consonant or -ь, neuter nouns in -о/-е.
2nd declension: feminine nouns ending in -а/-я.
3rd declension: feminine nouns ending in -ь.
Animate masculine nouns: accusative = genitive.
Inanimate masculine nouns: accusative = nominative.
`)
	return b.String()
}

// AdjectiveDeclensionRules returns the general ending patterns for
// adjectives per gender.
func AdjectiveDeclensionRules() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-16s %-16s %-12s %-12s %s\n", "Case", "Masculine", "Neuter", "Feminine", "Plural")
	rows := [][5]string{
		{"Nominative", "-ый(-ой)/-ий", "-ое/-ее", "-ая/-яя", "-ые/-ие"},
		{"Accusative", "= Nom / Gen", "-ое/-ее", "-ую/-юю", "= Nominative"},
		{"Genitive", "-ого/-его", "-ого/-его", "-ой/-ей", "-ых/-их"},
		{"Dative", "-ому/-ему", "-ому/-ему", "-ой/-ей", "-ым/-им"},
		{"Prepositional", "-ом/-ем", "-ом/-ем", "-ой/-ей", "-ых/-их"},
	}
	for _, row := range rows {
		fmt.Fprintf(&b, "%-16s %-16s %-12s %-12s %s\n", row[0], row[1], row[2], row[3], row[4])
	}
	b.WriteString(`
Endings after the slash are used with soft consonants.
Masculine singular takes -ой when the stress falls on the ending (большо́й), otherwise -ый (но́вый).
Masculine and neuter share the same endings in every case other than the nominative.
Feminine genitive, dative and prepositional share the ending -ой/-ей.
Masculine accusative: = nominative for inanimate nouns, = genitive for animate nouns.
Neuter accusative always equals the nominative.
`)
	return b.String()
}

// PronounDeclensionRules returns the full personal pronoun declension
// table with usage notes.
func PronounDeclensionRules() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-16s %-10s %-10s %-10s %-10s %-8s %-8s %s\n", "Case", "я", "ты́", "он", "она́", "мы", "вы", "они́")
	rows := [][8]string{
		{"Nominative", "я", "ты́", "он", "она́", "мы", "вы", "они́"},
		{"Accusative", "меня́", "тебя́", "(н)его́", "(н)её", "нас", "вас", "(н)их"},
		{"Genitive", "меня́", "тебя́", "(н)его́", "(н)её", "нас", "вас", "(н)их"},
		{"Dative", "мне", "тебе́", "(н)ему́", "(н)ей", "нам", "вам", "(н)им"},
		{"Prepositional", "мне", "тебе́", "нём", "ней", "нас", "вас", "них"},
	}
	for _, row := range rows {
		fmt.Fprintf(&b, "%-16s %-10s %-10s %-10s %-10s %-8s %-8s %s\n", row[0], row[1], row[2], row[3], row[4], row[5], row[6], row[7])
	}
	b.WriteString(`
Third person pronouns add н- after prepositions: у него́, с ней, о них.
Accusative and genitive are identical for all personal pronouns.
First and second person pronouns never take the н- prefix.
`)
	return b.String()
}

// VerbConjugationRules returns the conjugation I/II patterns with the
// common irregular verbs.
func VerbConjugationRules() string {
	return `FIRST CONJUGATION (-ать, -ять, -еть verbs)
Example: работать (to work)
  я работа-ю       мы работа-ем
  ты работа-ешь    вы работа-ете
  он работа-ет     они работа-ют

SECOND CONJUGATION (-ить verbs)
Example: говорить (to speak)
  я говор-ю        мы говор-им
  ты говор-ишь     вы говор-ите
  он говор-ит      они говор-ят

Conjugation I endings:  -ю, -ешь, -ет, -ем, -ете, -ют
Conjugation II endings: -ю/-у, -ишь, -ит, -им, -ите, -ят/-ат

Some verbs in -ать/-еть conjugate like II (гнать, держать, дышать,
слышать, смотреть, видеть, ненавидеть, зависеть, терпеть, вертеть,
обидеть), and a few are fully irregular (хотеть mixes both patterns).

Past tense: drop -ть and add -л (masculine), -ла (feminine),
-ло (neuter), -ли (plural). The past agrees with gender and number,
not person: он жил, она жила, оно жило, они жили.

Aspect: imperfective verbs describe process or repetition, perfective
verbs a completed result. Perfective verbs have no present tense.
`
}
