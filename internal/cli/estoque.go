package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewAdicionarCommand creates the adicionar command.
func NewAdicionarCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "adicionar <nome> <quantidade>",
		Short: "Adiciona estoque a um remédio",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(rootOpts)
			if err != nil {
				return err
			}
			defer a.close()

			quantidade, err := parseQuantidade(args[1])
			if err != nil {
				return err
			}
			r, err := a.resolver(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			r, err = a.svc.AdicionarEstoque(cmd.Context(), r.ID, quantidade)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Estoque de '%s' agora é %s %s.\n",
				r.Nome, r.EstoqueAtual.String(), r.Unidade)
			return nil
		},
	}
}

// NewModificarCommand creates the modificar command — sets the TOTAL stock,
// not a delta.
func NewModificarCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "modificar <nome> <novo-total>",
		Short: "Corrige o valor total do estoque de um remédio",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(rootOpts)
			if err != nil {
				return err
			}
			defer a.close()

			novoTotal, err := parseQuantidade(args[1])
			if err != nil {
				return err
			}
			r, err := a.resolver(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			r, err = a.svc.ModificarEstoque(cmd.Context(), r.ID, novoTotal)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Estoque de '%s' corrigido para %s %s.\n",
				r.Nome, r.EstoqueAtual.String(), r.Unidade)
			return nil
		},
	}
}

// NewRemoverCommand creates the remover command.
func NewRemoverCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "remover <nome>",
		Short: "Remove um remédio e todo o seu histórico",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(rootOpts)
			if err != nil {
				return err
			}
			defer a.close()

			r, err := a.resolver(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if err := a.svc.Remover(cmd.Context(), r.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Remédio '%s' removido.\n", r.Nome)
			return nil
		},
	}
}
