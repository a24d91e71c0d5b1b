/*
Command dictlookup is an offline dictionary inspection tool, separate from
the solver's hot path. Where pkg/dictionary stores words in a bitmask trie
sharded for concurrent DFS, dictlookup loads the same word list into a
tchap/go-patricia radix trie — a structure well suited to prefix queries
("every word starting with 'car'") but not to the solver's per-query
deep-copy-and-prune workload, which is why the two never share code.
*/
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/tchap/go-patricia/v2/patricia"
)

var cli struct {
	Dict   string `help:"Path to dictionary word list file." default:"words.txt"`
	Word   string `help:"Look up an exact word and report whether it is present."`
	Prefix string `help:"List every word starting with this prefix."`
	Stats  bool   `help:"Print word and trie item counts for the loaded dictionary."`
}

func main() {
	kong.Parse(&cli,
		kong.Name("dictlookup"),
		kong.Description("Inspect a boggle dictionary file via a radix trie."),
	)

	trie := patricia.NewTrie()
	count, err := loadDictionary(trie, cli.Dict)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dictlookup: %v\n", err)
		os.Exit(1)
	}

	switch {
	case cli.Word != "":
		lookupWord(trie, cli.Word)
	case cli.Prefix != "":
		listPrefix(trie, cli.Prefix)
	case cli.Stats:
		printStats(trie, count)
	default:
		printStats(trie, count)
	}
}

// loadDictionary inserts every whitespace-separated word in path into trie,
// upper-cased, and returns how many distinct words were inserted.
func loadDictionary(trie *patricia.Trie, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("opening dictionary: %w", err)
	}
	defer f.Close()

	count := 0
	scanner := bufio.NewScanner(f)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		word := strings.ToUpper(scanner.Text())
		if word == "" {
			continue
		}
		if trie.Insert(patricia.Prefix(word), true) {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return count, fmt.Errorf("reading dictionary: %w", err)
	}
	return count, nil
}

// lookupWord reports whether word is an exact match in trie.
func lookupWord(trie *patricia.Trie, word string) {
	word = strings.ToUpper(word)
	if trie.Match(patricia.Prefix(word)) {
		fmt.Printf("%s: present\n", word)
		return
	}
	fmt.Printf("%s: not found\n", word)
	os.Exit(1)
}

// listPrefix prints every word in trie starting with prefix.
func listPrefix(trie *patricia.Trie, prefix string) {
	prefix = strings.ToUpper(prefix)
	found := 0
	err := trie.VisitSubtree(patricia.Prefix(prefix), func(p patricia.Prefix, item patricia.Item) error {
		fmt.Println(string(p))
		found++
		return nil
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "dictlookup: %v\n", err)
		os.Exit(1)
	}
	if found == 0 {
		fmt.Printf("no words found with prefix %q\n", prefix)
	}
}

// printStats prints the distinct word count loaded and the number of items
// the trie visits. Visit walks stored items only, one per distinct word, so
// the two numbers agree; internal radix nodes are not counted.
func printStats(trie *patricia.Trie, wordCount int) {
	items := 0
	trie.Visit(func(p patricia.Prefix, item patricia.Item) error {
		items++
		return nil
	})
	fmt.Printf("words:      %d\n", wordCount)
	fmt.Printf("trie items: %d\n", items)
}
