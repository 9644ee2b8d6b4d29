package cli

func regCommands() {
	rootCmd.AddCommand(parseCmd)
}
